package main

import (
	"bytes"
	"strings"
	"testing"
)

func fixtureEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DASHBOARD_CONFIG", "")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("PREFERENCES_BACKEND", "file")
	t.Setenv("PREFERENCES_PATH", dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_ENABLED", "false")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestServeSkipsWhenEnvSet(t *testing.T) {
	fixtureEnv(t)
	t.Setenv("SKIP_SERVER_RUN", "1")
	if _, err := execute(t, "serve"); err != nil {
		t.Fatalf("serve returned error: %v", err)
	}
}

func TestShowWithoutPreferencePromptsForSetup(t *testing.T) {
	fixtureEnv(t)

	out, err := execute(t, "show")
	if err != nil {
		t.Fatalf("show returned error: %v", err)
	}
	if !strings.Contains(out, "Set up your dashboard") || !strings.Contains(out, setupCommand) {
		t.Fatalf("expected setup prompt, got:\n%s", out)
	}
}

func TestSetupSavesPreferenceAndShowReusesIt(t *testing.T) {
	fixtureEnv(t)

	out, err := execute(t, "setup", "--city", "  Paris ", "--team", "Arsenal")
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	if !strings.Contains(out, "Fixture League") || !strings.Contains(out, "Arsenal") {
		t.Fatalf("expected refreshed dashboard, got:\n%s", out)
	}

	out, err = execute(t, "show")
	if err != nil {
		t.Fatalf("show returned error: %v", err)
	}
	if strings.Contains(out, "Set up your dashboard") {
		t.Fatalf("expected saved preference to skip setup, got:\n%s", out)
	}
	if !strings.Contains(out, "Paris") || !strings.Contains(out, "Fixture Wire") {
		t.Fatalf("expected dashboard for saved preference, got:\n%s", out)
	}
}

func TestSetupWithIncompleteInputShowsPrompt(t *testing.T) {
	fixtureEnv(t)

	out, err := execute(t, "setup", "--city", "Paris", "--team", "   ")
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	if !strings.Contains(out, "Set up your dashboard") || !strings.Contains(out, `city="" team=""`) {
		t.Fatalf("expected prompt with empty current preference, got:\n%s", out)
	}
}

func TestThemeRequiresTeamAndPrintsSwatches(t *testing.T) {
	fixtureEnv(t)

	if _, err := execute(t, "theme"); err == nil {
		t.Fatal("expected error without a team argument")
	}

	out, err := execute(t, "theme", "Arsenal")
	if err != nil {
		t.Fatalf("theme returned error: %v", err)
	}
	for _, want := range []string{"Arsenal", "accent", "strong", "soft", "shadow"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in theme output, got:\n%s", want, out)
		}
	}
}

func TestProviderFlagOverridesEnv(t *testing.T) {
	fixtureEnv(t)
	t.Setenv("PROVIDER", "live")

	root := newRootCmd()
	root.SetArgs([]string{"--provider", "fixture", "theme", "Roma"})
	root.SetOut(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
