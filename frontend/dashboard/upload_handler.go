package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	sessioncontext "uploadlink/frontend/shared/context"
	"uploadlink/infrastructure/audit"
	"uploadlink/infrastructure/ingest"
	"uploadlink/infrastructure/sqlite"
	"uploadlink/infrastructure/tracking"
	"uploadlink/models"
)

const maxUploadBytes = 32 << 20

// UploadCommandHandler validates and forwards one snapshot submission.
//
// A rejected file never reaches the network: it redirects back with a
// blocking alert banner and the notification stays closed. A submitted file
// always produces an UploadResult and opens the result modal, whatever the
// outcome, so the operator always sees feedback after clicking submit.
func UploadCommandHandler(db *sqlite.DB, client *ingest.Client, sync *tracking.Synchronizer, notify *tracking.Notification, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, err := ingest.ParseTarget(chi.URLParam(r, "target"))
		if err != nil {
			http.Error(w, "unknown upload target", http.StatusNotFound)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			redirectWithAlert(w, r, errNoFile.Error())
			return
		}
		period := requestedPeriodFromForm(r)

		file, header, err := r.FormFile("file")
		if err != nil {
			redirectWithAlert(w, r, errNoFile.Error())
			return
		}
		defer file.Close()

		if err := validateCSVFilename(header.Filename); err != nil {
			redirectWithAlert(w, r, err.Error())
			return
		}

		result := client.Submit(r.Context(), target, header.Filename, file)

		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		if err := recordUploadAttempt(r.Context(), db, auditSvc, session.UserID, target, header.Filename, result); err != nil {
			slog.Error("record upload attempt failed",
				slog.String("target", string(target)), slog.String("filename", header.Filename), slog.Any("err", err))
		}

		notify.Deliver(result)
		if result.Succeeded {
			// Pull the freshly recorded date into the calendar.
			sync.Refresh(r.Context(), period)
		}

		http.Redirect(w, r, dashboardPath(period), http.StatusSeeOther)
	}
}

func redirectWithAlert(w http.ResponseWriter, r *http.Request, alert string) {
	http.Redirect(w, r, dashboardPath(requestedPeriodFromForm(r))+"&alert="+url.QueryEscape(alert), http.StatusSeeOther)
}

func recordUploadAttempt(ctx context.Context, db *sqlite.DB, auditSvc *audit.Service, userID int64, target ingest.Target, filename string, result tracking.UploadResult) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		log := &models.UploadLog{
			UserID:    userID,
			Target:    string(target),
			Filename:  filename,
			Succeeded: result.Succeeded,
			Message:   result.Message,
		}
		if _, err := tx.NewInsert().Model(log).Exec(ctx); err != nil {
			return err
		}
		if auditSvc != nil {
			after := map[string]any{"target": string(target), "filename": filename, "succeeded": result.Succeeded}
			return auditSvc.Write(ctx, tx, userID, "snapshot.upload", "upload_logs", filename, nil, after)
		}
		return nil
	})
}
