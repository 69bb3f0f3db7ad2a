package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/session"
)

func newSession(t *testing.T, seed int64) *session.Session {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	s, err := session.New(cfg)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestRegisterAndGet(t *testing.T) {
	r := New()
	s := newSession(t, 1)

	if replaced := r.Register("default", s); replaced {
		t.Error("first Register reported a replacement")
	}

	got, ok := r.Get("default")
	if !ok {
		t.Fatal("Get(default) not found")
	}
	if got != s {
		t.Error("Get returned a different session")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := New()
	first := newSession(t, 1)
	second := newSession(t, 2)

	r.Register("g", first)
	if replaced := r.Register("g", second); !replaced {
		t.Error("second Register should report a replacement")
	}

	got, _ := r.Get("g")
	if got != second {
		t.Error("Get should return the newest session")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestDelete(t *testing.T) {
	r := New()
	r.Register("a", newSession(t, 1))

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"existing", "a", true},
		{"already deleted", "a", false},
		{"never registered", "b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Delete(tt.id); got != tt.want {
				t.Errorf("Delete(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if r.Count() != 0 {
		t.Errorf("Count = %d, want 0", r.Count())
	}
}

func TestIDsSorted(t *testing.T) {
	r := New()
	for i, id := range []string{"zeta", "alpha", "mid"} {
		r.Register(id, newSession(t, int64(i)))
	}

	ids := r.IDs()
	want := []string{"alpha", "mid", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := New()
	s := newSession(t, 1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("g%d", i)
			r.Register(id, s)
			r.Get(id)
			r.IDs()
		}(i)
	}
	wg.Wait()

	if r.Count() != 16 {
		t.Errorf("Count = %d, want 16", r.Count())
	}
}
