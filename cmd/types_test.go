package cmd

import (
	"strings"
	"testing"

	"github.com/embertrack/ember/internal/streak"
)

func TestRunTypesAddAndList(t *testing.T) {
	configTestEnv(t)

	prevLabel := typeLabel
	t.Cleanup(func() { typeLabel = prevLabel })
	typeLabel = "Deep Work"

	captureStdout(t, func() {
		if err := runTypesAdd(typesAddCmd, []string{"deepwork"}); err != nil {
			t.Fatalf("runTypesAdd: %v", err)
		}
	})

	output := captureStdout(t, func() {
		if err := runTypesList(nil, nil); err != nil {
			t.Fatalf("runTypesList: %v", err)
		}
	})

	if !strings.Contains(output, "deepwork") {
		t.Errorf("expected 'deepwork' in list, got: %q", output)
	}
	if !strings.Contains(output, "Deep Work") {
		t.Errorf("expected label 'Deep Work' in list, got: %q", output)
	}
}

func TestRunTypesSet_ChangesOnlyGivenFlags(t *testing.T) {
	configTestEnv(t)
	seedType(t, "study", streak.Rules{GraceDays: 2, WeekendGrace: true})

	if err := typesSetCmd.Flags().Set("grace", "1"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}

	output := captureStdout(t, func() {
		if err := runTypesSet(typesSetCmd, []string{"study"}); err != nil {
			t.Fatalf("runTypesSet: %v", err)
		}
	})

	// Grace changed, weekend bridging untouched.
	if !strings.Contains(output, "grace 1") {
		t.Errorf("expected 'grace 1' in output, got: %q", output)
	}
	if !strings.Contains(output, "weekends bridge") {
		t.Errorf("expected weekend bridging to survive, got: %q", output)
	}
}

func TestRuleSummary(t *testing.T) {
	cases := []struct {
		rules streak.Rules
		want  string
	}{
		{streak.Rules{}, "strict"},
		{streak.Rules{GraceDays: 2}, "grace 2"},
		{streak.Rules{WeekendGrace: true}, "strict · weekends bridge"},
		{streak.Rules{GraceDays: 1, CountFuture: true}, "grace 1 · future days count"},
	}
	for _, tc := range cases {
		if got := ruleSummary(tc.rules); got != tc.want {
			t.Errorf("ruleSummary(%+v) = %q, want %q", tc.rules, got, tc.want)
		}
	}
}
