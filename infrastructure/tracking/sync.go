package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// FetchFunc retrieves the raw upload-status payload for a period.
type FetchFunc func(ctx context.Context, period Period) (map[string]any, error)

// Synchronizer owns the in-memory StatusRecord and keeps it current as the
// viewed period changes. It is the record's sole writer.
//
// Concurrent refreshes are resolved by request-issuance order: each refresh
// takes a generation token, and a response is applied only while its token
// is still the latest issued one. A late response for an earlier request is
// discarded, never applied over a newer record.
type Synchronizer struct {
	fetch FetchFunc

	mu     sync.Mutex
	issued uint64
	record StatusRecord
}

func NewSynchronizer(fetch FetchFunc) *Synchronizer {
	return &Synchronizer{
		fetch:  fetch,
		record: StatusRecord{},
	}
}

// Refresh fetches the status record for period and applies it unless a newer
// refresh was issued meanwhile. On fetch failure or a malformed payload the
// previous record is retained unchanged; the failure is logged, not surfaced.
// The returned record is the current one either way.
func (s *Synchronizer) Refresh(ctx context.Context, period Period) StatusRecord {
	s.mu.Lock()
	s.issued++
	token := s.issued
	s.mu.Unlock()

	payload, err := s.fetch(ctx, period)
	if err == nil {
		payload, err = unwrapStatusPayload(payload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		slog.Error("upload status refresh failed; keeping last known record",
			slog.Int("year", period.Year), slog.Int("month", int(period.Month)), slog.Any("err", err))
		return s.record
	}
	if token != s.issued {
		slog.Debug("discarding stale upload status response",
			slog.Uint64("token", token), slog.Uint64("latest", s.issued))
		return s.record
	}

	s.record = NormalizeRecord(payload)
	return s.record
}

// Record returns the last applied status record.
func (s *Synchronizer) Record() StatusRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// unwrapStatusPayload accepts both observed backend shapes: a record wrapped
// under an uploadStatus key, or the bare record itself.
func unwrapStatusPayload(body map[string]any) (map[string]any, error) {
	wrapped, ok := body["uploadStatus"]
	if !ok {
		return body, nil
	}
	inner, ok := wrapped.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("uploadStatus wrapper is not an object")
	}
	return inner, nil
}
