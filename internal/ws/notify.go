package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type BatchEvent struct {
	Type      string `json:"type"`
	BatchID   string `json:"batch_id"`
	JobID     string `json:"job_id,omitempty"`
	Done      int    `json:"done,omitempty"`
	Total     int    `json:"total,omitempty"`
	Success   int    `json:"success,omitempty"`
	Errors    int    `json:"errors,omitempty"`
	Timestamp string `json:"timestamp"`
}

// BatchNotifier adapts the hub to the batch usecase's notifier contract.
type BatchNotifier struct {
	hub *Hub
	now func() time.Time
}

func NewBatchNotifier(hub *Hub) *BatchNotifier {
	return &BatchNotifier{hub: hub, now: time.Now}
}

func (n *BatchNotifier) BatchStarted(batchID, jobID uuid.UUID, total int) {
	n.emit(BatchEvent{Type: "batch_started", BatchID: batchID.String(), JobID: jobID.String(), Total: total})
}

func (n *BatchNotifier) BatchProgress(batchID uuid.UUID, done, total int) {
	n.emit(BatchEvent{Type: "batch_progress", BatchID: batchID.String(), Done: done, Total: total})
}

func (n *BatchNotifier) BatchCompleted(batchID uuid.UUID, success, failed int) {
	n.emit(BatchEvent{Type: "batch_completed", BatchID: batchID.String(), Success: success, Errors: failed})
}

func (n *BatchNotifier) emit(evt BatchEvent) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = n.now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
