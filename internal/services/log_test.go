package services

import (
	"testing"
	"time"

	"github.com/pienas/amongus/internal/models"
)

func TestLogListNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	env.logs.Append("Jonas", "uid-1", "register")
	env.logs.Append("Jonas", "uid-1", "joinGame")
	env.logs.Append("Jonas", "uid-1", "screenHidden")

	logs, err := env.logs.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d entries, want 3", len(logs))
	}
	if logs[0].Action != "screenHidden" || logs[2].Action != "register" {
		t.Errorf("order = %s..%s, want newest first", logs[0].Action, logs[2].Action)
	}

	limited, err := env.logs.List(2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d entries", len(limited))
	}
}

func TestLogAppendIsBestEffort(t *testing.T) {
	env := newTestEnv(t)

	// Two entries at the same instant collide on the timestamp key; the
	// second write is dropped without failing the caller.
	frozen := env.clock
	env.logs.now = func() time.Time { return frozen }
	env.logs.Append("Jonas", "uid-1", "register")
	env.logs.Append("Jonas", "uid-1", "joinGame")

	var count int64
	env.db.Model(&models.GameLog{}).Count(&count)
	if count != 1 {
		t.Errorf("got %d entries, want 1 surviving the key collision", count)
	}
}
