package handset

import (
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

// RenewalPeriodYears is how long an approved handset is held before the
// employee becomes eligible for a new one.
const RenewalPeriodYears = 2

// collectionDateLayouts are the accepted wire formats for collection dates.
var collectionDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// RenewalDate derives the renewal deadline from a collection date. Only the
// calendar components of the input matter; time-of-day and zone are dropped.
// Feb 29 collections normalize to Mar 1 two years on, Go's standard AddDate
// behavior.
func RenewalDate(collection time.Time) time.Time {
	y, m, d := collection.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return day.AddDate(RenewalPeriodYears, 0, 0)
}

// ParseCollectionDate parses a caller-supplied collection date string.
func ParseCollectionDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperror.Validation("collection date is required")
	}
	for _, layout := range collectionDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Validation("invalid collection date: '" + raw + "'")
}
