package login

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"uploadlink/frontend/shared/html"
)

// GetLoginScreen renders the operator login form.
func GetLoginScreen(errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<main class="login">`)
		b.WriteString(`<h1>Snapshot Upload Dashboard</h1>`)
		if strings.TrimSpace(errorMessage) != "" {
			fmt.Fprintf(&b, `<p class="error">%s</p>`, templ.EscapeString(errorMessage))
		}
		b.WriteString(`<form method="POST" action="/login">`)
		b.WriteString(`<label>Username <input type="text" name="username" autocomplete="username" required></label>`)
		b.WriteString(`<label>Password <input type="password" name="password" autocomplete="current-password" required></label>`)
		b.WriteString(`<button type="submit">Sign in</button>`)
		b.WriteString(`</form></main>`)

		_, err := io.WriteString(w, html.RenderLayout("Sign in", b.String()))
		return err
	})
}
