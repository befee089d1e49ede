package nav

import (
	"fmt"

	"github.com/a-h/templ"

	"uploadlink/models"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Username string
}

func BuildTopNavData(session models.Session) TopNavData {
	return TopNavData{Username: session.User.Username}
}

// RenderTopNav produces the shared navigation bar with the sign-out form.
func RenderTopNav(d TopNavData) string {
	return fmt.Sprintf(`<nav class="topnav">
<a href="/ops/dashboard">Dashboard</a>
<a href="/ops/history">Upload History</a>
<span class="topnav-user">%s</span>
<form method="POST" action="/logout" class="topnav-signout"><button type="submit">Sign out</button></form>
</nav>`, templ.EscapeString(d.Username))
}
