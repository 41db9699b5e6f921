package handler

import (
	"html/template"
	"log/slog"
	"net/http"
)

// The page layer is a thin shell over the JSON API: the login and signup
// pages post to /login and /signup, and the dashboard fetches /items
// client-side. Protected pages sit behind RequirePage, which redirects
// browsers without a valid session back to the entry page.

var pageTmpl = template.Must(template.New("pages").Parse(`
{{define "layout_top"}}<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<nav><a href="/">Home</a>{{if .UserName}} | <a href="/dashboard">Dashboard</a> | <form method="post" action="/logout" style="display:inline"><button>Logout</button></form>{{else}} | <a href="/signup">Sign up</a>{{end}}</nav>
{{end}}

{{define "home"}}{{template "layout_top" .}}
<h1>Log in</h1>
<form id="login-form" method="post">
  <input name="email" type="email" placeholder="Email" required>
  <input name="password" type="password" placeholder="Password" required>
  <button>Log in</button>
</form>
<script>
document.getElementById("login-form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const f = new FormData(e.target);
  const res = await fetch("/login", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({email: f.get("email"), password: f.get("password")}),
  });
  if (res.ok) { window.location = "/dashboard"; } else { alert((await res.json()).error); }
});
</script>
</body></html>{{end}}

{{define "signup"}}{{template "layout_top" .}}
<h1>Sign up</h1>
<form id="signup-form" method="post">
  <input name="name" placeholder="Name" required>
  <input name="email" type="email" placeholder="Email" required>
  <input name="password" type="password" placeholder="Password" required>
  <button>Sign up</button>
</form>
<script>
document.getElementById("signup-form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const f = new FormData(e.target);
  const res = await fetch("/signup", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({name: f.get("name"), email: f.get("email"), password: f.get("password")}),
  });
  if (res.ok) { window.location = "/"; } else { alert((await res.json()).error); }
});
</script>
</body></html>{{end}}

{{define "dashboard"}}{{template "layout_top" .}}
<h1>Welcome, {{.UserName}}</h1>
<form id="item-form">
  <input name="title" placeholder="Title" required>
  <textarea name="description" placeholder="Description"></textarea>
  <button>Add item</button>
</form>
<ul id="items"></ul>
<script>
async function loadItems() {
  const res = await fetch("/items");
  const body = await res.json();
  const ul = document.getElementById("items");
  ul.innerHTML = "";
  for (const item of body.items) {
    const li = document.createElement("li");
    li.textContent = item.title + ": " + item.description;
    ul.appendChild(li);
  }
}
document.getElementById("item-form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const f = new FormData(e.target);
  const res = await fetch("/items", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({title: f.get("title"), description: f.get("description")}),
  });
  if (res.ok) { e.target.reset(); loadItems(); } else { alert((await res.json()).error); }
});
loadItems();
</script>
</body></html>{{end}}
`))

type pageData struct {
	Title    string
	UserName string
}

func renderPage(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render page", "page", name, "error", err)
	}
}

// HandleHome renders the public entry page with the login form.
// GET /
func HandleHome(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "home", pageData{Title: "Log in"})
}

// HandleSignupPage renders the signup form.
// GET /signup
func HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "signup", pageData{Title: "Sign up"})
}

// HandleDashboard renders the dashboard shell for the logged-in user.
// GET /dashboard (behind RequirePage)
func HandleDashboard(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	renderPage(w, "dashboard", pageData{Title: "Dashboard", UserName: claims.Name})
}
