package dashboard

import (
	"time"

	"uploadlink/frontend/shared/nav"
	"uploadlink/infrastructure/tracking"
)

// PageData feeds the dashboard renderer.
type PageData struct {
	Nav        nav.TopNavData
	Year       int
	Month      time.Month
	MonthLabel string
	PrevYear   int
	PrevMonth  time.Month
	NextYear   int
	NextMonth  time.Month
	Weeks      []tracking.Week
	Alert      string
	Modal      *ModalData
}

// ModalData is the open upload-result modal, nil while closed.
type ModalData struct {
	Succeeded bool
	Message   string
}
