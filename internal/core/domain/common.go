package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateRange bounds a report. Nil bounds are open; set bounds are inclusive.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains reports whether t falls inside the range, comparing calendar days.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateDay(t)
	if r.Start != nil && day.Before(truncateDay(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(truncateDay(*r.End)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
