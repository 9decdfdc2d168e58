package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// TestSession is the session every server started by StartServer holds.
const TestSession = "typeahead-test"

// Server is a throwaway tmux server bound to its own socket. It is torn down
// when the test finishes.
type Server struct {
	Socket string
	LogDir string

	t *testing.T
}

// RequireTmux aborts the calling test when tmux is not present on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// StartServer boots a server holding TestSession plus one detached session per
// extra name. The server runs with -vv so AssertNoServerCrash can inspect its
// log once the test is done.
func StartServer(t *testing.T, sessions ...string) *Server {
	t.Helper()
	RequireTmux(t)
	baseDir, err := os.MkdirTemp("/tmp", "tmux-typeahead-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	s := &Server{
		Socket: filepath.Join(baseDir, "tmux-test.sock"),
		LogDir: baseDir,
		t:      t,
	}
	t.Cleanup(func() { _ = os.RemoveAll(baseDir) })
	start := s.Command("-f", "/dev/null", "-vv", "new-session", "-d", "-s", TestSession, "sleep", "600")
	start.Dir = baseDir
	if err := start.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	t.Cleanup(s.shutdown)
	for _, name := range sessions {
		if err := s.Run("new-session", "-d", "-s", name); err != nil {
			t.Skipf("skipping: unable to create session %s: %v", name, err)
		}
	}
	return s
}

// Command prepares a tmux command against the server with the caller's TMUX
// variables cleared.
func (s *Server) Command(args ...string) *exec.Cmd {
	full := append([]string{"-S", s.Socket}, args...)
	cmd := exec.Command("tmux", full...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") || strings.HasPrefix(entry, "TMUX_PANE=") {
			continue
		}
		env = append(env, entry)
	}
	env = append(env, "TMUX=", "TMUX_TMPDIR="+filepath.Dir(s.Socket))
	cmd.Env = env
	return cmd
}

// Run executes a tmux command and folds its stderr into the error.
func (s *Server) Run(args ...string) error {
	var stderr bytes.Buffer
	cmd := s.Command(args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// SessionNames lists the sessions on the server.
func (s *Server) SessionNames() ([]string, error) {
	out, err := s.Command("list-sessions", "-F", "#{session_name}").Output()
	if err != nil {
		return nil, fmt.Errorf("list-sessions: %w", err)
	}
	return strings.Fields(string(out)), nil
}

// Capture returns the rendered contents of a pane.
func (s *Server) Capture(target string) (string, error) {
	args := []string{"capture-pane", "-e", "-p"}
	if target != "" {
		args = append(args, "-t", target)
	}
	output, err := s.Command(args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane failed: %w", err)
	}
	return string(output), nil
}

func (s *Server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := killServerControl(ctx, s.Socket); err != nil {
		s.t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", s.Socket, err)
		_ = s.Command("kill-server").Run()
	}
	AssertNoServerCrash(s.t, s.LogDir)
}

// AssertNoServerCrash scans tmux server logs under logDir for an unexpected
// exit.
func AssertNoServerCrash(t *testing.T, logDir string) {
	t.Helper()
	if strings.TrimSpace(logDir) == "" {
		return
	}
	files, err := filepath.Glob(filepath.Join(logDir, "tmux-server-*.log"))
	if err != nil {
		t.Errorf("failed to glob tmux logs: %v", err)
		return
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("failed to read tmux server log %s: %v", path, err)
			continue
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			t.Errorf("tmux server reported unexpected exit; see %s", path)
		}
	}
}

func killServerControl(ctx context.Context, socket string) error {
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
