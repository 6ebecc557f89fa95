package cmd

import (
	"strings"
	"testing"

	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/streak"
)

// seedType creates a tracked type directly through the journal store.
func seedType(t *testing.T, name string, rules streak.Rules) {
	t.Helper()
	db, err := store.Open()
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer db.Close()

	if _, err := journal.NewStore(db.Conn()).AddType(name, "", rules); err != nil {
		t.Fatalf("AddType: %v", err)
	}
}

func resetLogFlags(t *testing.T) {
	t.Helper()
	prevDate, prevUndo := logDate, logUndo
	t.Cleanup(func() {
		logDate, logUndo = prevDate, prevUndo
	})
	logDate = ""
	logUndo = false
}

func TestRunLog_StartsStreak(t *testing.T) {
	configTestEnv(t)
	resetLogFlags(t)
	seedType(t, "study", streak.Rules{})

	output := captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("runLog: %v", err)
		}
	})

	if !strings.Contains(output, "1-day streak") {
		t.Errorf("expected '1-day streak' in output, got: %q", output)
	}
}

func TestRunLog_SameDayIsNoOp(t *testing.T) {
	configTestEnv(t)
	resetLogFlags(t)
	seedType(t, "study", streak.Rules{})

	captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("first runLog: %v", err)
		}
	})
	output := captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("second runLog: %v", err)
		}
	})

	if !strings.Contains(output, "already logged") {
		t.Errorf("expected dedup warning, got: %q", output)
	}
}

func TestRunLog_UnknownType(t *testing.T) {
	configTestEnv(t)
	resetLogFlags(t)

	if err := runLog(nil, []string{"nope"}); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestRunLog_BadDateFlag(t *testing.T) {
	configTestEnv(t)
	resetLogFlags(t)
	seedType(t, "study", streak.Rules{})

	logDate = "2026-02-30"
	if err := runLog(nil, []string{"study"}); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestRunLog_Undo(t *testing.T) {
	configTestEnv(t)
	resetLogFlags(t)
	seedType(t, "study", streak.Rules{})

	captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("runLog: %v", err)
		}
	})

	logUndo = true
	output := captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("runLog --undo: %v", err)
		}
	})
	if !strings.Contains(output, "removed") {
		t.Errorf("expected removal confirmation, got: %q", output)
	}

	// A second undo finds nothing.
	output = captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("second runLog --undo: %v", err)
		}
	})
	if !strings.Contains(output, "nothing logged") {
		t.Errorf("expected no-op warning, got: %q", output)
	}
}

func TestRunStatus_ShowsStreak(t *testing.T) {
	configTestEnv(t)
	resetLogFlags(t)
	seedType(t, "study", streak.Rules{})

	captureStdout(t, func() {
		if err := runLog(nil, []string{"study"}); err != nil {
			t.Fatalf("runLog: %v", err)
		}
	})

	output := captureStdout(t, func() {
		if err := runStatus(nil, []string{"study"}); err != nil {
			t.Fatalf("runStatus: %v", err)
		}
	})

	if !strings.Contains(output, "Current") {
		t.Errorf("expected 'Current' in output, got: %q", output)
	}
	if !strings.Contains(output, "logged today") {
		t.Errorf("expected 'logged today' marker, got: %q", output)
	}
}
