package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the typeahead binary into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	RequireTmux(t)
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "tmux-typeahead")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// WaitFor polls target until its contents include want and returns the
// capture. exitPath, when set, names a file the launcher writes the binary's
// exit code to; a non-zero code fails the test early.
func (s *Server) WaitFor(ctx context.Context, target, exitPath, want string) string {
	s.t.Helper()
	loggedPaneMissing := false
	for {
		select {
		case <-ctx.Done():
			out, _ := s.Capture(target)
			s.t.Fatalf("timeout waiting for %q: %v\nlast capture:\n%s", want, ctx.Err(), out)
		case <-time.After(50 * time.Millisecond):
			if exitPath != "" {
				if data, err := os.ReadFile(exitPath); err == nil {
					if code := strings.TrimSpace(string(data)); code != "" && code != "0" {
						out, _ := s.Capture(target)
						s.t.Fatalf("tmux-typeahead exited early with code %s\n%s", code, out)
					}
				}
			}
			out, err := s.Capture(target)
			if err != nil {
				if errors.Is(err, ErrPaneUnavailable) {
					if !loggedPaneMissing {
						s.t.Logf("waiting for pane %s to become available", target)
						loggedPaneMissing = true
					}
					continue
				}
				s.t.Fatalf("capture-pane error: %v", err)
			}
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

// ShellQuote wraps v in single quotes for /bin/sh. Panes inherit the server's
// environment rather than the test's, so launcher scripts inline their values.
func ShellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
