package history

import (
	"context"

	"github.com/uptrace/bun"

	"uploadlink/infrastructure/sqlite"
)

const attemptPageSize = 100

// listUploadAttempts returns the most recent submission attempts, newest
// first, with the submitting user's name resolved for display.
func listUploadAttempts(ctx context.Context, db *sqlite.DB) ([]AttemptRow, error) {
	type row struct {
		ID        int64  `bun:"id"`
		Username  string `bun:"username"`
		Target    string `bun:"target"`
		Filename  string `bun:"filename"`
		Succeeded bool   `bun:"succeeded"`
		Message   string `bun:"message"`
		CreatedAt string `bun:"created_at"`
	}

	rows := make([]row, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT ul.id,
       COALESCE(u.username, '') AS username,
       ul.target, ul.filename, ul.succeeded, ul.message,
       strftime('%d/%m/%Y %H:%M', ul.created_at) AS created_at
FROM upload_logs ul
LEFT JOIN users u ON u.id = ul.user_id
ORDER BY ul.id DESC
LIMIT ?`, attemptPageSize).Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}

	out := make([]AttemptRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, AttemptRow{
			ID:        r.ID,
			Username:  r.Username,
			Target:    r.Target,
			Filename:  r.Filename,
			Succeeded: r.Succeeded,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
