package dashboard

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	sessioncontext "uploadlink/frontend/shared/context"
	"uploadlink/frontend/shared/nav"
	"uploadlink/infrastructure/tracking"
)

// DashboardPageQueryHandler renders the upload dashboard: the two submission
// forms, the month calendar for the viewed period, and the result modal when
// one is open. Every render refreshes the status record for the viewed
// period, so month navigation and the initial visit both trigger a sync.
func DashboardPageQueryHandler(sync *tracking.Synchronizer, notify *tracking.Notification, window tracking.Window) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		period := requestedPeriod(r, window)

		record := sync.Refresh(r.Context(), period)
		weeks := tracking.BuildGrid(period.Year, period.Month, func(date time.Time) tracking.Category {
			return window.Resolve(record, date)
		})

		data := PageData{
			Nav:        nav.BuildTopNavData(session),
			Year:       period.Year,
			Month:      period.Month,
			MonthLabel: fmt.Sprintf("%s %d", period.Month, period.Year),
			Weeks:      weeks,
			Alert:      r.URL.Query().Get("alert"),
		}
		data.PrevYear, data.PrevMonth = shiftMonth(period, -1)
		data.NextYear, data.NextMonth = shiftMonth(period, 1)

		if result, open := notify.Current(); open {
			data.Modal = &ModalData{Succeeded: result.Succeeded, Message: result.Message}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := DashboardPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
			return
		}
	}
}

// AcknowledgeCommandHandler closes the result modal.
func AcknowledgeCommandHandler(notify *tracking.Notification) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notify.Acknowledge()
		http.Redirect(w, r, dashboardPath(requestedPeriodFromForm(r)), http.StatusSeeOther)
	}
}

// requestedPeriod reads the viewed period from query params, defaulting to
// the current month.
func requestedPeriod(r *http.Request, window tracking.Window) tracking.Period {
	now := window.Now()
	period := tracking.Period{Year: now.Year(), Month: now.Month()}

	year, yearErr := strconv.Atoi(r.URL.Query().Get("year"))
	month, monthErr := strconv.Atoi(r.URL.Query().Get("month"))
	if yearErr == nil && monthErr == nil && year >= 1970 && year <= 9999 && month >= 1 && month <= 12 {
		period = tracking.Period{Year: year, Month: time.Month(month)}
	}
	return period
}

// requestedPeriodFromForm reads hidden year/month form fields posted by the
// dashboard forms so redirects land back on the viewed month.
func requestedPeriodFromForm(r *http.Request) tracking.Period {
	year, yearErr := strconv.Atoi(r.FormValue("year"))
	month, monthErr := strconv.Atoi(r.FormValue("month"))
	if yearErr == nil && monthErr == nil && year >= 1970 && year <= 9999 && month >= 1 && month <= 12 {
		return tracking.Period{Year: year, Month: time.Month(month)}
	}
	now := time.Now()
	return tracking.Period{Year: now.Year(), Month: now.Month()}
}

func shiftMonth(period tracking.Period, delta int) (int, time.Month) {
	shifted := time.Date(period.Year, period.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return shifted.Year(), shifted.Month()
}

func dashboardPath(period tracking.Period) string {
	return fmt.Sprintf("/ops/dashboard?year=%d&month=%d", period.Year, int(period.Month))
}
