package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func drainEvent(t *testing.T, hub *Hub) BatchEvent {
	t.Helper()
	select {
	case b := <-hub.broadcast:
		var evt BatchEvent
		if err := json.Unmarshal(b, &evt); err != nil {
			t.Fatalf("event is not valid JSON: %v", err)
		}
		return evt
	case <-time.After(time.Second):
		t.Fatalf("no event broadcast")
		return BatchEvent{}
	}
}

func TestBatchNotifier_EventShapes(t *testing.T) {
	hub := NewHub(nil)
	n := NewBatchNotifier(hub)
	n.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }

	batchID, jobID := uuid.New(), uuid.New()

	n.BatchStarted(batchID, jobID, 25)
	evt := drainEvent(t, hub)
	if evt.Type != "batch_started" || evt.BatchID != batchID.String() || evt.JobID != jobID.String() || evt.Total != 25 {
		t.Fatalf("unexpected started event: %+v", evt)
	}
	if evt.Timestamp != "2026-03-02T09:00:00Z" {
		t.Fatalf("unexpected timestamp: %q", evt.Timestamp)
	}

	n.BatchProgress(batchID, 10, 25)
	evt = drainEvent(t, hub)
	if evt.Type != "batch_progress" || evt.Done != 10 || evt.Total != 25 {
		t.Fatalf("unexpected progress event: %+v", evt)
	}

	n.BatchCompleted(batchID, 23, 2)
	evt = drainEvent(t, hub)
	if evt.Type != "batch_completed" || evt.Success != 23 || evt.Errors != 2 {
		t.Fatalf("unexpected completed event: %+v", evt)
	}
}

func TestBatchNotifier_NilHubIsNoOp(t *testing.T) {
	var n *BatchNotifier
	n.BatchStarted(uuid.New(), uuid.New(), 1) // must not panic
}
