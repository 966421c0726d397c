package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-floodit/internal/games/floodit"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, mode := range floodit.Modes() {
		if !strings.Contains(out, string(mode)) {
			t.Errorf("list output missing %q:\n%s", mode, out)
		}
	}
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "", "keys", "colors")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(out, "R  Red") || !strings.Contains(out, "Q  Quit") {
		t.Errorf("unexpected keys output:\n%s", out)
	}
	if strings.Contains(out, "Heart") {
		t.Error("colors mode should not list shapes")
	}

	if _, err := execute(t, "", "keys", "rainbow"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestPlainCommand(t *testing.T) {
	logFile := t.TempDir() + "/floodit.log"

	out, err := execute(t, "x\nc\nr\nq\n", "plain", "--seed", "3", "--log-file", logFile)
	if err != nil {
		t.Fatalf("plain failed: %v", err)
	}

	if !strings.Contains(out, floodit.ModePrompt) || !strings.Contains(out, floodit.InvalidMode) {
		t.Errorf("expected mode prompt and reprompt:\n%s", out)
	}
	if !strings.Contains(out, "Moves left: 19") || !strings.Contains(out, floodit.QuitMessage) {
		t.Errorf("expected one move then quit:\n%s", out)
	}
}

func TestPlainCommandBadLogLevel(t *testing.T) {
	defer func() { flagLogLevel = "info" }()

	if _, err := execute(t, "", "plain", "colors", "--log-level", "loud"); err == nil {
		t.Error("invalid log level should fail")
	}
}

func TestThemeCommand(t *testing.T) {
	path := t.TempDir() + "/theme.yaml"
	if err := os.WriteFile(path, []byte("border:\n  origin_marker: \"*\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	defer func() { flagConfig = "" }()

	out, err := execute(t, "", "theme", "--config", path)
	if err != nil {
		t.Fatalf("theme failed: %v", err)
	}
	if !strings.Contains(out, "origin_marker: '*'") && !strings.Contains(out, `origin_marker: "*"`) {
		t.Errorf("expected overridden marker in:\n%s", out)
	}
	if !strings.Contains(out, "block:") {
		t.Errorf("expected defaults merged in:\n%s", out)
	}
}
