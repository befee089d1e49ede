package reports

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"uploadlink/infrastructure/tracking"
)

// MonthlyReportPDFHandler serves the printable upload tracker for one month.
// The period segment looks like 2025-03.pdf.
func MonthlyReportPDFHandler(sync *tracking.Synchronizer, window tracking.Window) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriodSegment(chi.URLParam(r, "period"))
		if !ok {
			http.Error(w, "invalid report period", http.StatusBadRequest)
			return
		}

		record := sync.Refresh(r.Context(), period)
		weeks := tracking.BuildGrid(period.Year, period.Month, func(date time.Time) tracking.Category {
			return window.Resolve(record, date)
		})

		pdfBytes, err := renderMonthlyReportPDF(period, weeks, window.Now())
		if err != nil {
			http.Error(w, "failed to render report", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("inline; filename=upload-status-%04d-%02d.pdf", period.Year, int(period.Month)))
		_, _ = w.Write(pdfBytes)
	}
}

func parsePeriodSegment(segment string) (tracking.Period, bool) {
	raw, found := strings.CutSuffix(segment, ".pdf")
	if !found {
		return tracking.Period{}, false
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return tracking.Period{}, false
	}
	return tracking.Period{Year: parsed.Year(), Month: parsed.Month()}, true
}
