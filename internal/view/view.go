package view

import (
	"bytes"
	"fmt"
	"html/template"

	"gemshop/internal/domain"
)

// Renderer projects catalog, cart, account and order state into HTML
// pages. It is a pure consumer: it never touches the store and only
// sees what the read accessors hand it.
type Renderer struct {
	tmpl *template.Template
}

// New parses the page templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("gemshop").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page is the data every rendered page shares: the nav cart badge and
// an optional toast message.
type Page struct {
	CartCount int
	Toast     string
}

// ShopData drives the product grid page.
type ShopData struct {
	Page
	Query    string
	Products []domain.Product
}

// CartData drives the cart page.
type CartData struct {
	Page
	Items []domain.LineItem
	Total float64
}

// ProfileData drives the profile page. Status is the display label for
// the account standing; orders are summarized with a fixed note rather
// than correlated against the ledger, a display limitation carried
// over on purpose.
type ProfileData struct {
	Page
	SignedIn   bool
	IsAdmin    bool
	Name       string
	Email      string
	Status     string
	Avatar     string
	OrdersNote string
	ItemsNote  string
}

// AdminData drives the admin dashboard.
type AdminData struct {
	Page
	Products []domain.Product
	Orders   []domain.Order
}

// CheckoutData drives the order confirmation page.
type CheckoutData struct {
	Page
	Order domain.Order
}

func (r *Renderer) Shop(data ShopData) (string, error) { return r.render("shop", data) }

func (r *Renderer) Cart(data CartData) (string, error) { return r.render("cart", data) }

func (r *Renderer) Auth(data Page) (string, error) { return r.render("auth", data) }

func (r *Renderer) Profile(data ProfileData) (string, error) { return r.render("profile", data) }

func (r *Renderer) Admin(data AdminData) (string, error) { return r.render("admin", data) }

func (r *Renderer) Confirmation(data CheckoutData) (string, error) {
	return r.render("confirmation", data)
}

func (r *Renderer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
