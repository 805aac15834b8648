package mailbox

import (
	"testing"
	"time"
)

func TestLatestWins(t *testing.T) {
	m := New[int]()

	m.Put(1)
	m.Put(2)
	m.Put(3)

	if got := m.Take(); got != 3 {
		t.Fatalf("Take = %d, want 3 (latest value wins)", got)
	}
	if v := m.TryTake(); v != nil {
		t.Fatalf("TryTake after drain = %v, want nil", *v)
	}
}

func TestTakeBlocksUntilPut(t *testing.T) {
	m := New[string]()

	done := make(chan string)
	go func() {
		done <- m.Take()
	}()

	select {
	case v := <-done:
		t.Fatalf("Take returned %q before any Put", v)
	case <-time.After(50 * time.Millisecond):
	}

	m.Put("go")

	select {
	case v := <-done:
		if v != "go" {
			t.Fatalf("Take = %q, want go", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Take did not wake up after Put")
	}
}

func TestTryTakeNeverBlocks(t *testing.T) {
	m := New[int]()

	if v := m.TryTake(); v != nil {
		t.Fatalf("TryTake on empty = %v, want nil", *v)
	}

	m.Put(7)
	v := m.TryTake()
	if v == nil || *v != 7 {
		t.Fatalf("TryTake = %v, want 7", v)
	}
}
