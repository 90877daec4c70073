package tui

import (
	"sync"
	"testing"
	"time"
)

func TestConnections(t *testing.T) {
	c := NewConnections()

	a := c.Add("alice", "10.0.0.1:5000", t0.Add(time.Second))
	b := c.Add("bob", "10.0.0.2:5000", t0)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("IDs = %q, %q", a.ID, b.ID)
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", c.Count())
	}

	list := c.List()
	if len(list) != 2 || list[0].User != "bob" || list[1].User != "alice" {
		t.Errorf("List() = %+v, expected oldest first", list)
	}

	c.Remove(b.ID)
	c.Remove("missing")
	if c.Count() != 1 {
		t.Errorf("Count() = %d after remove, expected 1", c.Count())
	}
}

func TestConnectionsConcurrent(t *testing.T) {
	c := NewConnections()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := c.Add("user", "remote", t0)
			c.Count()
			c.Remove(conn.ID)
		}()
	}
	wg.Wait()

	if c.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", c.Count())
	}
}
