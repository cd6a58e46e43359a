package transport

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"gemshop/internal/account"
	"gemshop/internal/cart"
	"gemshop/internal/catalog"
	"gemshop/internal/domain"
	"gemshop/internal/middleware"
	"gemshop/internal/order"
	"gemshop/internal/upload"
	"gemshop/internal/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRequest carries the registration form. Only the name is
// validated; email and password formats are deliberately left alone.
type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string
	Password string
}

// AddProductRequest carries the admin add-product form.
type AddProductRequest struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gt=0"`
	Image string  `validate:"required"`
}

// StorefrontHandler serves the storefront pages and form actions.
type StorefrontHandler struct {
	catalog  *catalog.Manager
	cart     *cart.Engine
	accounts *account.Manager
	ledger   *order.Ledger
	renderer *view.Renderer
	logger   *zap.Logger
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(
	c *catalog.Manager,
	e *cart.Engine,
	a *account.Manager,
	l *order.Ledger,
	r *view.Renderer,
	logger *zap.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		catalog:  c,
		cart:     e,
		accounts: a,
		ledger:   l,
		renderer: r,
		logger:   logger,
	}
}

// RegisterRoutes registers all storefront routes
func (h *StorefrontHandler) RegisterRoutes(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Get("/", h.Shop)
	r.Post("/cart/add/{id}", h.AddToCart)

	r.Get("/cart", h.CartPage)
	r.Post("/cart/{index}/qty", h.UpdateQuantity)
	r.Post("/cart/{index}/remove", h.RemoveItem)
	r.Post("/cart/clear", h.ClearCart)
	r.Post("/checkout", h.Checkout)

	r.Get("/auth", h.AuthPage)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Get("/profile", h.ProfilePage)
	r.Post("/profile/avatar", h.UploadAvatar)

	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Get("/admin", h.AdminPage)
		r.Post("/admin/products", h.AdminAddProduct)
		r.Post("/admin/products/{index}/delete", h.AdminDeleteProduct)
	})
}

// Shop renders the product grid, narrowed by the search query if set
func (h *StorefrontHandler) Shop(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	h.renderPage(w, r, func(page view.Page) (string, error) {
		return h.renderer.Shop(view.ShopData{
			Page:     page,
			Query:    query,
			Products: h.catalog.List(query),
		})
	})
}

// AddToCart adds one unit of a product to the cart
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.redirect(w, r, "/", "")
		return
	}

	if err := h.cart.Add(r.Context(), id); err != nil {
		h.logger.Error("Failed to add to cart", zap.Error(err))
		h.redirect(w, r, "/", "Something went wrong")
		return
	}

	h.redirect(w, r, "/", "Added to cart")
}

// CartPage renders the cart with its recomputed total
func (h *StorefrontHandler) CartPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, func(page view.Page) (string, error) {
		return h.renderer.Cart(view.CartData{
			Page:  page,
			Items: h.cart.Items(r.Context()),
			Total: h.cart.Total(r.Context()),
		})
	})
}

// UpdateQuantity sets a line item's quantity from the form value
func (h *StorefrontHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.redirect(w, r, "/cart", "")
		return
	}

	if err := h.cart.SetQuantity(r.Context(), index, r.FormValue("qty")); err != nil {
		h.logger.Debug("Quantity update rejected", zap.Error(err))
		h.redirect(w, r, "/cart", "Item not found")
		return
	}

	h.redirect(w, r, "/cart", "")
}

// RemoveItem removes a line item by position
func (h *StorefrontHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.redirect(w, r, "/cart", "")
		return
	}

	if err := h.cart.Remove(r.Context(), index); err != nil {
		h.logger.Debug("Cart removal rejected", zap.Error(err))
		h.redirect(w, r, "/cart", "Item not found")
		return
	}

	h.redirect(w, r, "/cart", "")
}

// ClearCart empties the cart
func (h *StorefrontHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		h.logger.Error("Failed to clear cart", zap.Error(err))
	}
	h.redirect(w, r, "/cart", "")
}

// Checkout records the order and renders the confirmation page
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	placed, err := h.ledger.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			h.redirect(w, r, "/cart", "Your cart is empty")
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		h.redirect(w, r, "/cart", "Something went wrong")
		return
	}

	html, err := h.renderer.Confirmation(view.CheckoutData{
		Page: view.Page{
			CartCount: h.cart.ItemCount(r.Context()),
			Toast:     "Order placed successfully!",
		},
		Order: placed,
	})
	if err != nil {
		h.renderError(w, err)
		return
	}
	h.writeHTML(w, html)
}

// AuthPage renders the sign-in / register page
func (h *StorefrontHandler) AuthPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, func(page view.Page) (string, error) {
		return h.renderer.Auth(page)
	})
}

// Register creates (or overwrites) the single account
func (h *StorefrontHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := RegisterRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := middleware.ValidateRequest(req); err != nil {
		h.logger.Debug("Registration validation failed", zap.Error(err))
		h.redirect(w, r, "/auth", "Please enter your name")
		return
	}

	acct, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Registration failed", zap.Error(err))
		h.redirect(w, r, "/auth", "Something went wrong")
		return
	}

	// Role-derived landing page
	target := "/"
	if acct.Role == domain.RoleAdmin {
		target = "/admin"
	}
	h.redirect(w, r, target, "Account created successfully!")
}

// Login authenticates against the stored account
func (h *StorefrontHandler) Login(w http.ResponseWriter, r *http.Request) {
	_, err := h.accounts.Authenticate(r.Context(), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, account.ErrNoAccount):
			h.redirect(w, r, "/auth", "No account found. Please register first.")
		case errors.Is(err, account.ErrInvalidCredentials):
			h.redirect(w, r, "/auth", "Invalid email or password")
		default:
			h.logger.Error("Login failed", zap.Error(err))
			h.redirect(w, r, "/auth", "Something went wrong")
		}
		return
	}

	h.redirect(w, r, "/", "Welcome back!")
}

// Logout deletes the account record (the account is the session)
func (h *StorefrontHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.SignOut(r.Context()); err != nil {
		h.logger.Error("Sign-out failed", zap.Error(err))
	}
	h.redirect(w, r, "/", "Logged out successfully")
}

// ProfilePage renders the profile summary for the account or guest
func (h *StorefrontHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemCount := h.cart.ItemCount(ctx)

	itemsNote := "0 items"
	if itemCount > 0 {
		itemsNote = strconv.Itoa(itemCount) + " items in cart"
	}

	data := view.ProfileData{
		Page: view.Page{
			CartCount: itemCount,
			Toast:     r.URL.Query().Get("toast"),
		},
		Name:       "Guest User",
		Email:      "Not logged in",
		Status:     "Guest",
		OrdersNote: "No orders yet",
		ItemsNote:  itemsNote,
	}

	if acct, ok := h.accounts.Current(ctx); ok {
		data.SignedIn = true
		data.IsAdmin = acct.Role == domain.RoleAdmin
		data.Name = acct.Name
		data.Email = acct.Email
		data.Avatar = acct.Avatar
		data.Status = "Active Member"
		if data.IsAdmin {
			data.Status = "Administrator"
		}
	} else if uri, ok := h.accounts.GuestAvatar(ctx); ok {
		data.Avatar = uri
	}

	html, err := h.renderer.Profile(data)
	if err != nil {
		h.renderError(w, err)
		return
	}
	h.writeHTML(w, html)
}

// UploadAvatar validates the uploaded image and stores it as the
// account (or guest) avatar
func (h *StorefrontHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("avatar")
	if err != nil {
		h.redirect(w, r, "/profile", "Failed to upload image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, upload.MaxAvatarBytes+1))
	if err != nil {
		h.redirect(w, r, "/profile", "Failed to upload image")
		return
	}

	mime, err := upload.ValidateAvatar(data)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrNotImage):
			h.redirect(w, r, "/profile", "Please select an image file")
		case errors.Is(err, upload.ErrTooLarge):
			h.redirect(w, r, "/profile", "Image size must be less than 2MB")
		default:
			h.redirect(w, r, "/profile", "Failed to upload image")
		}
		return
	}

	if err := h.accounts.SetAvatar(r.Context(), upload.DataURI(mime, data)); err != nil {
		h.logger.Error("Failed to store avatar", zap.Error(err))
		h.redirect(w, r, "/profile", "Failed to upload image")
		return
	}

	h.redirect(w, r, "/profile", "Profile picture updated!")
}

// AdminPage renders the product and order dashboards
func (h *StorefrontHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, func(page view.Page) (string, error) {
		return h.renderer.Admin(view.AdminData{
			Page:     page,
			Products: h.catalog.List(""),
			Orders:   h.ledger.List(r.Context()),
		})
	})
}

// AdminAddProduct validates the form and appends a catalog product
func (h *StorefrontHandler) AdminAddProduct(w http.ResponseWriter, r *http.Request) {
	req := AddProductRequest{
		Name:  r.FormValue("name"),
		Price: middleware.FormNumber(r, "price"),
		Image: r.FormValue("image"),
	}

	if err := middleware.ValidateRequest(req); err != nil {
		for _, ve := range middleware.FormatValidationErrors(err) {
			if ve.Field == "Price" {
				h.redirect(w, r, "/admin", "Price must be greater than 0")
				return
			}
		}
		h.redirect(w, r, "/admin", "Fill all fields")
		return
	}

	if _, err := h.catalog.Add(r.Context(), req.Name, req.Price, req.Image); err != nil {
		h.logger.Error("Failed to add product", zap.Error(err))
		h.redirect(w, r, "/admin", "Fill all fields")
		return
	}

	h.redirect(w, r, "/admin", "Product added")
}

// AdminDeleteProduct removes a catalog product by position
func (h *StorefrontHandler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.redirect(w, r, "/admin", "")
		return
	}

	if err := h.catalog.Remove(r.Context(), index); err != nil {
		h.logger.Debug("Product deletion rejected", zap.Error(err))
		h.redirect(w, r, "/admin", "Product not found")
		return
	}

	h.redirect(w, r, "/admin", "Product deleted")
}

// renderPage assembles the shared page chrome and writes the rendered
// HTML, reading the toast from the post-redirect query param.
func (h *StorefrontHandler) renderPage(w http.ResponseWriter, r *http.Request, render func(view.Page) (string, error)) {
	page := view.Page{
		CartCount: h.cart.ItemCount(r.Context()),
		Toast:     r.URL.Query().Get("toast"),
	}

	html, err := render(page)
	if err != nil {
		h.renderError(w, err)
		return
	}
	h.writeHTML(w, html)
}

// redirect sends the visitor on with an optional toast message.
func (h *StorefrontHandler) redirect(w http.ResponseWriter, r *http.Request, path, toast string) {
	if toast != "" {
		path = path + "?toast=" + url.QueryEscape(toast)
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (h *StorefrontHandler) renderError(w http.ResponseWriter, err error) {
	h.logger.Error("Failed to render page", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (h *StorefrontHandler) writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
