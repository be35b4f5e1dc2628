package web

import (
	"testing"
	"time"

	"thinkboard/internal/pages"
)

func TestToastStore_TakeDrainsQueue(t *testing.T) {
	store := newToastStore()
	store.Add("session:a", Toast{ID: "1", Message: "first"})
	store.Add("session:a", Toast{ID: "2", Message: "second"})
	store.Add("session:b", Toast{ID: "3", Message: "other"})

	got := store.Take("session:a")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("unexpected toasts %+v", got)
	}
	if again := store.Take("session:a"); len(again) != 0 {
		t.Fatalf("expected drained queue, got %+v", again)
	}
	if other := store.Take("session:b"); len(other) != 1 {
		t.Fatalf("expected other session untouched, got %+v", other)
	}
}

func TestToastStore_DropsExpired(t *testing.T) {
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newToastStore()
	store.now = func() time.Time { return base.Add(3 * time.Second) }

	store.Add("k", Toast{ID: "old", DurationSeconds: 2, CreatedAt: base})
	store.Add("k", Toast{ID: "fresh", DurationSeconds: 4, CreatedAt: base})
	store.Add("k", Toast{ID: "sticky", CreatedAt: base.Add(-time.Hour)})

	got := store.Take("k")
	if len(got) != 2 || got[0].ID != "fresh" || got[1].ID != "sticky" {
		t.Fatalf("unexpected toasts %+v", got)
	}
}

func TestToastStore_IgnoresEmptyKey(t *testing.T) {
	store := newToastStore()
	store.Add("", Toast{ID: "x"})
	if got := store.Take(""); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestToastNotifier_ConvertsNotification(t *testing.T) {
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	store := newToastStore()
	store.now = func() time.Time { return at }
	n := toastNotifier{store: store, key: "k", now: store.now}

	n.Notify(pages.Notification{Kind: pages.KindError, Message: "boom", Icon: "💀", Duration: 4 * time.Second})

	got := store.Take("k")
	if len(got) != 1 {
		t.Fatalf("expected one toast, got %d", len(got))
	}
	toast := got[0]
	if toast.ID == "" || toast.Message != "boom" || toast.Kind != "error" || toast.Icon != "💀" {
		t.Fatalf("unexpected toast %+v", toast)
	}
	if toast.DurationSeconds != 4 || !toast.CreatedAt.Equal(at) {
		t.Fatalf("unexpected timing %+v", toast)
	}
}
