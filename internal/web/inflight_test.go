package web

import "testing"

func TestInflight_RefusesSecondHolder(t *testing.T) {
	f := newInflight()

	unlock, ok := f.TryLock("session:a|create")
	if !ok {
		t.Fatalf("expected first lock")
	}
	if _, ok := f.TryLock("session:a|create"); ok {
		t.Fatalf("expected second lock refused")
	}
	other, ok := f.TryLock("session:b|create")
	if !ok {
		t.Fatalf("expected independent key to lock")
	}
	other()

	unlock()
	again, ok := f.TryLock("session:a|create")
	if !ok {
		t.Fatalf("expected lock after release")
	}
	again()
}
