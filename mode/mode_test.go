//go:build !windows

package mode

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// stubStty writes a fake stty to a temp dir and returns its path.
func stubStty(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stty")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("couldn't write stub: %v", err)
	}
	return path
}

func TestCommandArguments(t *testing.T) {
	cases := []struct {
		op   func(*Session) error
		want string
	}{
		{(*Session).Raw, "raw -echo"},
		{(*Session).Sane, "sane"},
		{func(s *Session) error { return s.Restore("500:5:bf:8a3b") }, "500:5:bf:8a3b"},
	}

	for i, c := range cases {
		argFile := filepath.Join(t.TempDir(), "args")
		s := NewSession(stubStty(t, `echo "$@" > `+argFile))

		if err := c.op(s); err != nil {
			t.Errorf("%d: got error %v, wanted none", i, err)
			continue
		}
		got, err := os.ReadFile(argFile)
		if err != nil {
			t.Fatalf("%d: couldn't read args: %v", i, err)
		}
		if strings.TrimSpace(string(got)) != c.want {
			t.Errorf("%d: invoked with %q, wanted %q", i, strings.TrimSpace(string(got)), c.want)
		}
	}
}

func TestSaveTrimsToken(t *testing.T) {
	s := NewSession(stubStty(t, `echo "500:5:bf:8a3b"`))

	token, err := s.Save()
	if err != nil {
		t.Fatalf("got error %v, wanted a token", err)
	}
	if token != "500:5:bf:8a3b" {
		t.Errorf("got token %q, wanted %q", token, "500:5:bf:8a3b")
	}
}

func TestExitStatusPropagates(t *testing.T) {
	s := NewSession(stubStty(t, "exit 3"))

	err := s.Sane()
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, wanted an *exec.ExitError", err)
	}
	if ee.ExitCode() != 3 {
		t.Errorf("got exit code %d, wanted 3", ee.ExitCode())
	}

	if _, err := s.Save(); err == nil {
		t.Error("save got nil error, wanted the exit status")
	}
}

func TestMissingExecutable(t *testing.T) {
	s := NewSession(filepath.Join(t.TempDir(), "no-such-stty"))
	if err := s.Raw(); err == nil {
		t.Error("got nil error, wanted exec failure")
	}
}
