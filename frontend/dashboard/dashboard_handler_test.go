package dashboard

import (
	stdcontext "context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sessioncontext "uploadlink/frontend/shared/context"
	"uploadlink/infrastructure/tracking"
	"uploadlink/models"
)

func marchWindow() tracking.Window {
	return tracking.Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Now:   func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func newDashboardRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := sessioncontext.NewContextWithSession(req.Context(),
		models.Session{UserID: 1, User: models.User{ID: 1, Username: "operator"}})
	return req.WithContext(ctx)
}

func TestDashboardPageQueryHandler_RendersCategories(t *testing.T) {
	sync := tracking.NewSynchronizer(func(ctx stdcontext.Context, period tracking.Period) (map[string]any, error) {
		return map[string]any{"uploadStatus": map[string]any{"2025-3-5": true}}, nil
	})
	handler := DashboardPageQueryHandler(sync, tracking.NewNotification(), marchWindow())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDashboardRequest("/ops/dashboard?year=2025&month=3"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "March 2025") {
		t.Fatalf("expected month label in page")
	}
	if !strings.Contains(body, `<td class="day confirmed">5</td>`) {
		t.Fatalf("expected the explicitly recorded day to render confirmed:\n%s", body)
	}
	// 2025-03-04 has no record and sits inside the window: overdue.
	if !strings.Contains(body, `<td class="day pending">4</td>`) {
		t.Fatalf("expected in-window gap to render pending")
	}
	// 2025-03-09 is a Sunday, 2025-03-20 is after today.
	if !strings.Contains(body, `<td class="day not-applicable">9</td>`) {
		t.Fatalf("expected Sunday to render not-applicable")
	}
	if !strings.Contains(body, `<td class="day not-applicable">20</td>`) {
		t.Fatalf("expected future day to render not-applicable")
	}
	if strings.Contains(body, "modal-overlay") {
		t.Fatalf("expected no modal while notification is closed")
	}
}

func TestDashboardPageQueryHandler_ShowsModalWhileOpen(t *testing.T) {
	sync := tracking.NewSynchronizer(func(ctx stdcontext.Context, period tracking.Period) (map[string]any, error) {
		return map[string]any{}, nil
	})
	notify := tracking.NewNotification()
	notify.Deliver(tracking.UploadResult{Succeeded: false, Message: "disk full"})

	handler := DashboardPageQueryHandler(sync, notify, marchWindow())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDashboardRequest("/ops/dashboard"))

	body := rr.Body.String()
	if !strings.Contains(body, "modal-overlay") || !strings.Contains(body, "disk full") {
		t.Fatalf("expected open modal with result message")
	}
}

func TestDashboardPageQueryHandler_InvalidPeriodFallsBackToToday(t *testing.T) {
	var fetched tracking.Period
	sync := tracking.NewSynchronizer(func(ctx stdcontext.Context, period tracking.Period) (map[string]any, error) {
		fetched = period
		return map[string]any{}, nil
	})
	handler := DashboardPageQueryHandler(sync, tracking.NewNotification(), marchWindow())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newDashboardRequest("/ops/dashboard?year=banana&month=99"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if fetched != (tracking.Period{Year: 2025, Month: time.March}) {
		t.Fatalf("expected fallback to injected today, got %+v", fetched)
	}
}

func TestAcknowledgeCommandHandler_ClosesModal(t *testing.T) {
	notify := tracking.NewNotification()
	notify.Deliver(tracking.UploadResult{Succeeded: true, Message: "ok"})

	handler := AcknowledgeCommandHandler(notify)
	req := httptest.NewRequest(http.MethodPost, "/ops/notification/ack", strings.NewReader("year=2025&month=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Location"), "/ops/dashboard?year=2025&month=3") {
		t.Fatalf("expected redirect back to viewed month, got %s", rr.Header().Get("Location"))
	}
	if _, open := notify.Current(); open {
		t.Fatalf("expected notification to be closed after acknowledge")
	}
}
