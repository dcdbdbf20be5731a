// ABOUTME: PTY harness for e2e tests: builds the t2d binary once and drives
// ABOUTME: it through a pseudo-terminal with expect-style helpers

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// binary builds cmd/t2d once per test run and returns its path.
func binary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "t2d-e2e")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "t2d")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/t2d")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("build output:\n%s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building t2d: %v", buildErr)
	}
	return binPath
}

// session is one t2d process attached to a PTY.
type session struct {
	cmd  *exec.Cmd
	tty  *os.File
	mu   sync.Mutex
	out  bytes.Buffer
	done chan error
}

// startT2D launches t2d in an isolated HOME and working directory.
func startT2D(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(binary(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "TERM=xterm-256color")

	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		t.Fatalf("starting pty: %v", err)
	}

	s := &session{cmd: cmd, tty: tty, done: make(chan error, 1)}
	go func() {
		buf := make([]byte, 4096)
		answered := map[string]int{}
		for {
			n, err := tty.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				raw := s.out.String()
				s.mu.Unlock()
				answerTerminalQueries(tty, raw, answered)
			}
			if err != nil {
				break
			}
		}
		s.done <- cmd.Wait()
	}()
	return s
}

// answerTerminalQueries replies to terminal capability queries the program
// sends on startup (background color OSC 11, cursor position DSR), which a
// real terminal would answer; without a reply the program blocks until its
// internal query timeout.
func answerTerminalQueries(tty *os.File, raw string, answered map[string]int) {
	for query, reply := range map[string]string{
		"\x1b]11;?": "\x1b]11;rgb:0000/0000/0000\x1b\\",
		"\x1b[6n":   "\x1b[1;1R",
	} {
		if n := strings.Count(raw, query); n > answered[query] {
			answered[query] = n
			tty.Write([]byte(reply))
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// expectStringTimeout polls the captured output until needle appears.
func (s *session) expectStringTimeout(t *testing.T, needle string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), needle) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", needle, s.output())
}

// send types text into the PTY.
func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.tty.Write([]byte(text)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// submit types a line and presses enter.
func (s *session) submit(t *testing.T, line string) {
	t.Helper()
	s.send(t, line+"\r")
}

// sendCtrl sends a control character (e.g. 'c' for Ctrl+C).
func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string([]byte{c - 'a' + 1}))
}

// waitExit blocks until the process ends.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatalf("process did not exit; output:\n%s", s.output())
	}
}

func (s *session) close() {
	s.cmd.Process.Kill()
	s.tty.Close()
}
