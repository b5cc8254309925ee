package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskAnomalyScan runs the ledger anomaly detector.
	TaskAnomalyScan = "anomalies:scan"
)

// AnomalyScanPayload identifies who or what asked for a scan.
type AnomalyScanPayload struct {
	RequestedBy string    `json:"requestedBy"`
	RequestedAt time.Time `json:"requestedAt"`
}

// NewAnomalyScanTask constructs an Asynq task.
func NewAnomalyScanTask(payload AnomalyScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAnomalyScan, data), nil
}
