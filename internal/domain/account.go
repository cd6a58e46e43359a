package domain

import (
	"strings"
	"time"
)

// Role is the privilege level attached to an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AdminEmail is the reserved administrator address.
const AdminEmail = "admin@emm.com"

// adminSuffix marks self-registered administrator accounts.
const adminSuffix = "@admin"

// Account is the single stored credential record. It doubles as the
// session: while it exists, its owner is signed in, and signing out
// deletes it. The password is stored in plain text; the persisted
// format is load-bearing and must stay readable across runs.
type Account struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Avatar    string    `json:"avatar,omitempty"`
}

// DeriveRole maps an email address to the role a registration with that
// address receives. Admin is granted for the reserved administrator
// address or any address ending in the admin suffix.
func DeriveRole(email string) Role {
	if strings.HasSuffix(email, adminSuffix) || email == AdminEmail {
		return RoleAdmin
	}
	return RoleUser
}
