package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"uploadlink/frontend/shared/html"
	"uploadlink/frontend/shared/nav"
)

// DashboardPage renders the whole dashboard view.
func DashboardPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.RenderTopNav(data.Nav))
		b.WriteString(`<main class="dashboard">`)
		b.WriteString(`<h1>Snapshot Upload Dashboard</h1>`)

		if strings.TrimSpace(data.Alert) != "" {
			fmt.Fprintf(&b, `<div class="alert" role="alert">%s</div>`, templ.EscapeString(data.Alert))
		}

		writeUploadForm(&b, data, "stocks", "Daily Stocks")
		writeUploadForm(&b, data, "sales", "Daily Sales")
		writeCalendar(&b, data)

		fmt.Fprintf(&b, `<p><a href="/ops/reports/%04d-%02d.pdf">Download monthly status report (PDF)</a></p>`, data.Year, int(data.Month))
		b.WriteString(`</main>`)

		if data.Modal != nil {
			writeResultModal(&b, data)
		}

		_, err := io.WriteString(w, html.RenderLayout("Upload Dashboard", b.String()))
		return err
	})
}

func writeUploadForm(b *strings.Builder, data PageData, target, label string) {
	fmt.Fprintf(b, `<section class="upload"><h2>%s</h2>`, templ.EscapeString(label))
	fmt.Fprintf(b, `<form method="POST" action="/ops/uploads/%s" enctype="multipart/form-data">`, target)
	writePeriodFields(b, data)
	b.WriteString(`<input type="file" name="file" accept=".csv">`)
	fmt.Fprintf(b, `<button type="submit">Submit %s File</button>`, templ.EscapeString(label))
	b.WriteString(`</form></section>`)
}

func writeCalendar(b *strings.Builder, data PageData) {
	b.WriteString(`<section class="calendar"><h3>Daily upload tracker</h3>`)
	fmt.Fprintf(b, `<div class="calendar-nav"><a href="/ops/dashboard?year=%d&amp;month=%d">&lt;</a> <span>%s</span> <a href="/ops/dashboard?year=%d&amp;month=%d">&gt;</a></div>`,
		data.PrevYear, int(data.PrevMonth), templ.EscapeString(data.MonthLabel), data.NextYear, int(data.NextMonth))

	b.WriteString(`<table class="calendar-table"><thead><tr><th>Sun</th><th>Mon</th><th>Tue</th><th>Wed</th><th>Thu</th><th>Fri</th><th>Sat</th></tr></thead><tbody>`)
	for _, week := range data.Weeks {
		b.WriteString(`<tr>`)
		for _, cell := range week {
			if cell.Blank() {
				b.WriteString(`<td class="empty"></td>`)
				continue
			}
			fmt.Fprintf(b, `<td class="day %s">%d</td>`, cell.Category, cell.Day)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></section>`)
}

func writeResultModal(b *strings.Builder, data PageData) {
	outcome := "failure"
	if data.Modal.Succeeded {
		outcome = "success"
	}
	fmt.Fprintf(b, `<div class="modal-overlay"><div class="modal %s"><h2>Upload Status</h2><p>%s</p>`,
		outcome, templ.EscapeString(data.Modal.Message))
	b.WriteString(`<form method="POST" action="/ops/notification/ack">`)
	writePeriodFields(b, data)
	b.WriteString(`<button type="submit">OK</button></form></div></div>`)
}

func writePeriodFields(b *strings.Builder, data PageData) {
	fmt.Fprintf(b, `<input type="hidden" name="year" value="%d"><input type="hidden" name="month" value="%d">`,
		data.Year, int(data.Month))
}
