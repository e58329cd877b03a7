package queue

import (
	"encoding/json"
	"fmt"
)

// Subjects used across the service. Every transaction mutation publishes
// SubjectTransactionsChanged; the analytics worker listens on it and
// announces SubjectSummariesUpdated once the recompute lands.
const (
	SubjectTransactionsChanged = "transactions.changed"
	SubjectSummariesUpdated    = "summaries.updated"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}

// PublishJSON marshals v and publishes it on subject.
func PublishJSON(mq MessageQueue, subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("queue: marshal %s payload: %w", subject, err)
	}
	return mq.Publish(subject, data)
}
