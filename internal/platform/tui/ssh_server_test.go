package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewSSHServer(t *testing.T) {
	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "keys", "host_ed25519"),
		IdleTimeout: time.Minute,
		TickRate:    60,
		Hold:        150 * time.Millisecond,
	}

	srv, err := NewSSHServer(cfg, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.Connections().Count() != 0 {
		t.Error("a new server should have no sessions")
	}
}
