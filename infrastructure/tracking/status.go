package tracking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Category is the display classification of a single calendar day.
type Category int

const (
	// CategoryNotApplicable means no upload is expected for the day.
	CategoryNotApplicable Category = iota
	// CategoryConfirmed means the backend recorded an upload for the day.
	CategoryConfirmed
	// CategoryPendingOverdue means an upload is expected but not recorded.
	CategoryPendingOverdue
)

func (c Category) String() string {
	switch c {
	case CategoryConfirmed:
		return "confirmed"
	case CategoryPendingOverdue:
		return "pending"
	default:
		return "not-applicable"
	}
}

// Indicator is the normalized form of a backend status value.
type Indicator int

const (
	// IndicatorUnknown marks values the backend sent but we cannot read.
	IndicatorUnknown Indicator = iota
	IndicatorUploaded
	IndicatorMissed
)

// StatusRecord maps canonical YYYY-MM-DD keys to normalized indicators.
//
// A record is a snapshot: refreshes replace it wholesale, nothing mutates
// an existing record in place.
type StatusRecord map[string]Indicator

// UploadResult is the terminal outcome of one submission attempt.
type UploadResult struct {
	Succeeded bool
	Message   string
}

// Period identifies the month a calendar view displays.
type Period struct {
	Year  int
	Month time.Month
}

// CanonicalKey formats a date as the canonical zero-padded record key.
func CanonicalKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CanonicalizeKey normalizes a backend date key to zero-padded YYYY-MM-DD.
//
// Backend revisions disagree on padding (2025-3-7 vs 2025-03-07); every key
// comparison in this package goes through this one function.
func CanonicalizeKey(key string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 3 {
		return "", false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// NormalizeRecord converts a decoded JSON status payload into a StatusRecord,
// canonicalizing keys and indicator encodings. Unreadable keys are dropped;
// unreadable values are kept as IndicatorUnknown so the resolver falls back
// to its heuristic for those days.
func NormalizeRecord(raw map[string]any) StatusRecord {
	rec := make(StatusRecord, len(raw))
	for key, value := range raw {
		canonical, ok := CanonicalizeKey(key)
		if !ok {
			continue
		}
		rec[canonical] = normalizeIndicator(value)
	}
	return rec
}

// normalizeIndicator folds the observed backend encodings (booleans,
// affirmative/negative tokens, color tokens, 0/1) into one Indicator.
func normalizeIndicator(value any) Indicator {
	switch v := value.(type) {
	case bool:
		if v {
			return IndicatorUploaded
		}
		return IndicatorMissed
	case float64:
		if v == 1 {
			return IndicatorUploaded
		}
		if v == 0 {
			return IndicatorMissed
		}
		return IndicatorUnknown
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "uploaded", "done", "success", "1", "green":
			return IndicatorUploaded
		case "false", "no", "not uploaded", "missed", "0", "red":
			return IndicatorMissed
		default:
			return IndicatorUnknown
		}
	default:
		return IndicatorUnknown
	}
}

// Window is the tracked date range: from a fixed tracking-start date through
// "today". Both ends are injected so callers and tests control time.
type Window struct {
	Start time.Time
	Now   func() time.Time
}

// Resolve classifies one date against the status record.
//
// Sundays and dates outside the tracked window are never expected to carry
// an upload, so they short-circuit before the explicit lookup. Inside the
// window an explicit entry wins; a gap on a business day means the upload
// is overdue.
func (w Window) Resolve(rec StatusRecord, date time.Time) Category {
	if date.Weekday() == time.Sunday {
		return CategoryNotApplicable
	}

	day := dateOnly(date)
	if day.Before(dateOnly(w.Start)) || day.After(dateOnly(w.Now())) {
		return CategoryNotApplicable
	}

	switch rec[CanonicalKey(date)] {
	case IndicatorUploaded:
		return CategoryConfirmed
	case IndicatorMissed:
		return CategoryPendingOverdue
	}
	return CategoryPendingOverdue
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
