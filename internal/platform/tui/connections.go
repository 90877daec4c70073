package tui

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Connection describes one live SSH session.
type Connection struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// Connections tracks live SSH sessions.
// Thread-safe for concurrent access.
type Connections struct {
	mu    sync.RWMutex
	conns map[string]Connection
}

// NewConnections creates an empty connection set.
func NewConnections() *Connections {
	return &Connections{conns: make(map[string]Connection)}
}

// Add records a new session and returns it with a fresh ID.
func (c *Connections) Add(user, remote string, now time.Time) Connection {
	conn := Connection{ID: uuid.NewString(), User: user, Remote: remote, Started: now}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.conns[conn.ID] = conn
	return conn
}

// Remove forgets a session. Unknown IDs are ignored.
func (c *Connections) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.conns, id)
}

// Count returns the number of live sessions.
func (c *Connections) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.conns)
}

// List returns the live sessions, oldest first.
func (c *Connections) List() []Connection {
	c.mu.RLock()
	list := make([]Connection, 0, len(c.conns))
	for _, conn := range c.conns {
		list = append(list, conn)
	}
	c.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Started.Before(list[j].Started)
	})
	return list
}
