package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
)

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisConnOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// EnqueueAnomalyScan asks the worker for an immediate scan.
func (c *Client) EnqueueAnomalyScan(ctx context.Context, requestedBy string) error {
	task, err := NewAnomalyScanTask(AnomalyScanPayload{RequestedBy: requestedBy, RequestedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault), asynq.MaxRetry(3))
	return err
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
