package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, []string{"config", "init", "--path", target}); err == nil {
		t.Error("second init without --overwrite succeeded")
	}
	if _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}); err != nil {
		t.Errorf("init --overwrite: %v", err)
	}
}

func TestParseOtherVersions(t *testing.T) {
	got, err := parseOtherVersions([]string{"en=KJV,NIV", "pt=NVI-PT", "en=ESV"})
	if err != nil {
		t.Fatalf("parseOtherVersions: %v", err)
	}
	if len(got["en"]) != 3 || got["en"][2] != "ESV" {
		t.Errorf("en versions = %v", got["en"])
	}
	if len(got["pt"]) != 1 || got["pt"][0] != "NVI-PT" {
		t.Errorf("pt versions = %v", got["pt"])
	}

	for _, bad := range []string{"en", "=KJV", "en=", "en=,"} {
		if _, err := parseOtherVersions([]string{bad}); err == nil {
			t.Errorf("parseOtherVersions(%q) accepted invalid input", bad)
		}
	}

	if got, err := parseOtherVersions(nil); err != nil || got != nil {
		t.Errorf("nil input: %v, %v", got, err)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"Date", "Lang"},
		[][]string{{"2025-01-01", "es"}, {"2025-01-02"}},
		nil,
	)
	if !strings.Contains(out, "2025-01-01") || !strings.Contains(out, "2025-01-02") {
		t.Errorf("table output missing rows:\n%s", out)
	}
}
