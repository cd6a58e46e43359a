package view

// Stylesheet is the shared page styling, served at /static/style.css.
const Stylesheet = `body {
  margin: 0;
  font-family: system-ui, sans-serif;
  background: #faf7f2;
  color: #2b2b2b;
}

.topnav {
  display: flex;
  gap: 1.5rem;
  padding: 1rem 2rem;
  background: #2b2b2b;
}

.topnav a {
  color: #faf7f2;
  text-decoration: none;
}

.toast {
  margin: 1rem 2rem;
  padding: 0.75rem 1rem;
  background: #e8f5e9;
  border-left: 4px solid #2e7d32;
}

.search {
  margin: 1.5rem 2rem;
}

.grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
  gap: 1.5rem;
  padding: 0 2rem 2rem;
}

.card {
  background: #fff;
  border-radius: 8px;
  padding: 1rem;
  text-align: center;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
}

.card img {
  max-width: 100%;
  height: 140px;
  object-fit: contain;
}

.cart-row,
.admin-row {
  display: flex;
  align-items: center;
  gap: 1rem;
  padding: 0.75rem 2rem;
  border-bottom: 1px solid #e0e0e0;
}

.cart-row img {
  width: 48px;
  height: 48px;
  object-fit: contain;
}

#total {
  padding: 1rem 2rem;
  font-weight: bold;
}

.auth,
.confirmation,
.profile-overview {
  max-width: 420px;
  margin: 2rem auto;
  padding: 1.5rem;
  background: #fff;
  border-radius: 8px;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
}

.auth input {
  display: block;
  width: 100%;
  margin: 0.5rem 0;
  padding: 0.5rem;
  box-sizing: border-box;
}

.profile-card {
  text-align: center;
}

#profile-avatar {
  width: 96px;
  height: 96px;
  border-radius: 50%;
  object-fit: cover;
}

.info-block {
  text-align: left;
  margin: 0.75rem 0;
}

.profile-action-btn {
  display: inline-block;
  margin: 0.5rem 0;
}

.order-card {
  margin: 0.75rem 2rem;
  padding: 0.75rem;
  background: #fff;
  border-radius: 8px;
  box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
}

button {
  padding: 0.4rem 0.9rem;
  border: none;
  border-radius: 4px;
  background: #2b2b2b;
  color: #faf7f2;
  cursor: pointer;
}
`
