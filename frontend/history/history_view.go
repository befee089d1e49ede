package history

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"uploadlink/frontend/shared/html"
	"uploadlink/frontend/shared/nav"
)

func HistoryPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.RenderTopNav(data.Nav))
		b.WriteString(`<main class="history">`)
		b.WriteString(`<h1>Upload History</h1>`)

		if len(data.Rows) == 0 {
			b.WriteString(`<p>No uploads recorded yet.</p>`)
		} else {
			b.WriteString(`<table class="history-table"><thead><tr><th>When</th><th>User</th><th>Target</th><th>File</th><th>Result</th><th>Message</th></tr></thead><tbody>`)
			for _, row := range data.Rows {
				outcome := "Failed"
				rowClass := "failure"
				if row.Succeeded {
					outcome = "Succeeded"
					rowClass = "success"
				}
				fmt.Fprintf(&b, `<tr class="%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					rowClass,
					templ.EscapeString(row.CreatedAt),
					templ.EscapeString(row.Username),
					templ.EscapeString(row.Target),
					templ.EscapeString(row.Filename),
					outcome,
					templ.EscapeString(row.Message))
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</main>`)

		_, err := io.WriteString(w, html.RenderLayout("Upload History", b.String()))
		return err
	})
}
