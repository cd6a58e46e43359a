package view

// One template text, multiple named pages. Prices render with the
// store's "dt" currency suffix, matching the persisted data.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>emm store</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<nav class="topnav">
  <a href="/">Shop</a>
  <a href="/cart">Cart (<span id="cart-count">{{.CartCount}}</span>)</a>
  <a href="/profile">Profile</a>
</nav>
{{if .Toast}}<div class="toast">{{.Toast}}</div>{{end}}
{{end}}

{{define "foot"}}</body>
</html>
{{end}}

{{define "shop"}}{{template "head" .Page}}
<form class="search" method="get" action="/">
  <input type="search" name="q" value="{{.Query}}" placeholder="Search products">
  <button type="submit">Search</button>
</form>
<section id="products" class="grid">
{{if .Products}}{{range .Products}}
  <article class="card">
    <img src="/{{.Image}}" alt="{{.Name}}">
    <h3>{{.Name}}</h3>
    <p>{{.Price}} dt</p>
    <form method="post" action="/cart/add/{{.ID}}">
      <button type="submit">Add to cart</button>
    </form>
  </article>
{{end}}{{else}}
  <p>No products found.</p>
{{end}}
</section>
{{template "foot" .}}{{end}}

{{define "cart"}}{{template "head" .Page}}
<section id="cart-items">
{{if .Items}}{{range $i, $item := .Items}}
  <div class="cart-row">
    <img src="/{{$item.Image}}" alt="{{$item.Name}}">
    <span>{{$item.Name}}</span>
    <form method="post" action="/cart/{{$i}}/qty">
      <input type="number" min="1" name="qty" value="{{$item.Qty}}">
      <button type="submit">Update</button>
    </form>
    <span>{{$item.Subtotal}} dt</span>
    <form method="post" action="/cart/{{$i}}/remove">
      <button type="submit" aria-label="Remove item">&#x2715;</button>
    </form>
  </div>
{{end}}
  <p id="total">{{.Total}} dt</p>
  <form method="post" action="/cart/clear"><button type="submit">Clear cart</button></form>
  <form method="post" action="/checkout"><button type="submit">Checkout</button></form>
{{else}}
  <p>Your cart is empty.</p>
  <a href="/">Continue shopping</a>
  <p id="total">0 dt</p>
{{end}}
</section>
{{template "foot" .}}{{end}}

{{define "auth"}}{{template "head" .}}
<section class="auth">
  <h2>Sign In</h2>
  <form method="post" action="/login">
    <input type="email" name="email" placeholder="Email" required>
    <input type="password" name="password" placeholder="Password" required>
    <button type="submit">Sign In</button>
  </form>
  <h2>Create Account</h2>
  <form method="post" action="/register">
    <input type="text" name="name" placeholder="Name">
    <input type="email" name="email" placeholder="Email" required>
    <input type="password" name="password" placeholder="Password" required>
    <button type="submit">Register</button>
  </form>
</section>
{{template "foot" .}}{{end}}

{{define "profile"}}{{template "head" .Page}}
<section class="profile-overview">
  <div class="profile-card">
    {{if .Avatar}}<img id="profile-avatar" src="{{.Avatar}}" alt="avatar">{{end}}
    <h2 class="profile-name">{{.Name}}</h2>
    <p class="profile-email">{{.Email}}</p>
    <div class="info-block"><h4>Account</h4><p>{{.Status}}</p></div>
    <div class="info-block"><h4>Orders</h4><p>{{.OrdersNote}}</p></div>
    <div class="info-block"><h4>Saved Items</h4><p>{{.ItemsNote}}</p></div>
    {{if .IsAdmin}}<a id="admin-link-btn" href="/admin">Admin Dashboard</a>{{end}}
    {{if .SignedIn}}
    <form method="post" action="/logout"><button class="profile-action-btn" type="submit">Sign Out</button></form>
    {{else}}
    <a class="profile-action-btn" href="/auth">Sign In / Register</a>
    {{end}}
    <form method="post" action="/profile/avatar" enctype="multipart/form-data">
      <input type="file" id="avatar-upload" name="avatar" accept="image/*">
      <button type="submit">Upload picture</button>
    </form>
  </div>
</section>
{{template "foot" .}}{{end}}

{{define "admin"}}{{template "head" .Page}}
<section id="admin-products">
  <h2>Products</h2>
{{if .Products}}{{range $i, $p := .Products}}
  <div class="admin-row">
    <span>{{$p.Name}}</span>
    <span>{{$p.Price}} dt</span>
    <form method="post" action="/admin/products/{{$i}}/delete">
      <button type="submit">Delete</button>
    </form>
  </div>
{{end}}{{else}}
  <p>No products yet.</p>
{{end}}
  <form method="post" action="/admin/products">
    <input type="text" name="name" placeholder="Name">
    <input type="number" step="0.01" name="price" placeholder="Price">
    <input type="text" name="image" placeholder="Image path">
    <button type="submit">Add product</button>
  </form>
</section>
<section id="admin-orders">
  <h2>Orders</h2>
{{if .Orders}}{{range .Orders}}
  <div class="order-card">
    <strong>Order #{{.ID}}</strong><br>
    User: {{.UserEmail}}<br>
    Total: {{.Total}} dt<br>
    Date: {{.Date}}<br>
    Items: {{range $j, $item := .Items}}{{if $j}}, {{end}}{{$item.Name}} &times; {{$item.Qty}}{{end}}
  </div>
{{end}}{{else}}
  <p>No orders yet.</p>
{{end}}
</section>
{{template "foot" .}}{{end}}

{{define "confirmation"}}{{template "head" .Page}}
<section class="confirmation">
  <h2>Thank you for your order!</h2>
  <p>Order #{{.Order.ID}}</p>
  <p>Total: {{.Order.Total}} dt</p>
  <p>You'll receive a confirmation email soon.</p>
  <a href="/">Continue shopping</a>
</section>
{{template "foot" .}}{{end}}
`
