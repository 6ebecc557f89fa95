package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// configTestEnv isolates config/data paths into a temp dir.
func configTestEnv(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")
	t.Setenv("XDG_STATE_HOME", tmpDir+"/state")
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = old
		r.Close()
	}()

	fn()

	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

func TestRunConfigGet_KnownKey(t *testing.T) {
	configTestEnv(t)

	output := captureStdout(t, func() {
		if err := runConfigGet(nil, []string{"calendar.timezone"}); err != nil {
			t.Fatalf("runConfigGet: %v", err)
		}
	})

	if strings.TrimSpace(output) != "Local" {
		t.Errorf("calendar.timezone = %q, want Local", strings.TrimSpace(output))
	}
}

func TestRunConfigGet_UnknownKey(t *testing.T) {
	configTestEnv(t)

	if err := runConfigGet(nil, []string{"nope.nothing"}); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestRunConfigSet_RoundTrip(t *testing.T) {
	configTestEnv(t)

	captureStdout(t, func() {
		if err := runConfigSet(nil, []string{"user.name", "Robin"}); err != nil {
			t.Fatalf("runConfigSet: %v", err)
		}
	})

	output := captureStdout(t, func() {
		if err := runConfigGet(nil, []string{"user.name"}); err != nil {
			t.Fatalf("runConfigGet: %v", err)
		}
	})
	if strings.TrimSpace(output) != "Robin" {
		t.Errorf("user.name = %q, want Robin", strings.TrimSpace(output))
	}
}

func TestRunConfigSet_RejectsBadTimezone(t *testing.T) {
	configTestEnv(t)

	if err := runConfigSet(nil, []string{"calendar.timezone", "Mars/Olympus_Mons"}); err == nil {
		t.Error("expected error for bogus timezone")
	}
}

func TestRunConfigSet_RejectsNegativeGrace(t *testing.T) {
	configTestEnv(t)

	if err := runConfigSet(nil, []string{"defaults.grace_days", "-1"}); err == nil {
		t.Error("expected error for negative grace_days")
	}
}
