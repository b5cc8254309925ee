package domain

// Severity of a diagnostic finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a single diagnostic emitted by the anomaly detector.
type Finding struct {
	Severity    Severity `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion,omitempty"`
}
