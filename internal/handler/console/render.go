package console

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer plugs the console page templates into echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.New("console").Parse(pageTemplates))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// The element identifiers (Create_Account, firstname, ..., message,
// alert-message, alert close) are the page contract the styling and any
// front-end scripting hang off.
const pageTemplates = `
{{define "account_new"}}<!DOCTYPE html>
<html>
<head><title>Create Account</title></head>
<body>
<div id="alert-message" class="alert {{.Banner.Class}}"{{if not .Banner.Visible}} style="display:none"{{end}}>
  <span id="message">{{.Banner.Message}}</span>
  <form method="post" action="/users/new/dismiss"><button class="close" type="submit">&times;</button></form>
</div>
<form method="post" action="/users/new">
  <label for="firstname">First Name</label>
  <input id="firstname" name="firstname" value="{{.Values.FirstName}}">
  <label for="lastname">Last Name</label>
  <input id="lastname" name="lastname" value="{{.Values.LastName}}">
  <label for="email">Email</label>
  <input id="email" name="email" value="{{.Values.Email}}">
  <label for="username">Username</label>
  <input id="username" name="username" value="{{.Values.Username}}">
  <label for="password">Password</label>
  <input id="password" name="password" type="password" value="{{.Values.Password}}">
  <label for="is_admin">Admin</label>
  <input id="is_admin" name="is_admin" value="{{.Values.IsAdmin}}">
  <button id="Create_Account" type="submit">Create Account</button>
</form>
</body>
</html>{{end}}

{{define "users_index"}}<!DOCTYPE html>
<html>
<head><title>Users</title></head>
<body>
<h1>Users</h1>
<table id="users">
  <tr><th>ID</th><th>Name</th><th>Email</th><th>Username</th><th>Admin</th></tr>
{{range .Users}}  <tr><td>{{.ID}}</td><td>{{.FirstName}} {{.LastName}}</td><td>{{.Email}}</td><td>{{.Username}}</td><td>{{.IsAdmin}}</td></tr>
{{end}}</table>
<a href="/users/new">Create Account</a>
</body>
</html>{{end}}
`
