package history

import (
	"net/http"

	sessioncontext "uploadlink/frontend/shared/context"
	"uploadlink/frontend/shared/nav"
	"uploadlink/infrastructure/sqlite"
)

func HistoryPageQueryHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		rows, err := listUploadAttempts(r.Context(), db)
		if err != nil {
			http.Error(w, "failed to load upload history", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := HistoryPage(PageData{Nav: nav.BuildTopNavData(session), Rows: rows}).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render upload history", http.StatusInternalServerError)
			return
		}
	}
}
