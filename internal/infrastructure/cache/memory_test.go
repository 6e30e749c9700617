package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	if err := m.SetJSON(ctx, "k", payload{Name: "x"}, time.Minute); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var out payload
	hit, err := m.GetJSON(ctx, "k", &out)
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if out.Name != "x" {
		t.Fatalf("payload mismatch: %+v", out)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hit, _ := m.GetJSON(ctx, "k", &out); hit {
		t.Fatalf("expected miss after delete")
	}
}

func TestMemory_TTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Now()
	m.now = func() time.Time { return base }

	if err := m.SetJSON(ctx, "k", 42, time.Minute); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var out int
	if hit, _ := m.GetJSON(ctx, "k", &out); !hit {
		t.Fatalf("expected hit before expiry")
	}

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	if hit, _ := m.GetJSON(ctx, "k", &out); hit {
		t.Fatalf("expected miss after expiry")
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry should be evicted, len=%d", m.Len())
	}
}
