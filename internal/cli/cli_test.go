package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// --- parseHeader ---

func TestParseHeader(t *testing.T) {
	cases := []struct {
		input     string
		wantName  string
		wantValue string
		wantErr   bool
	}{
		{"Accept: application/json", "Accept", "application/json", false},
		{"X-Token:abc", "X-Token", "abc", false},
		{"Location: https://example.com/a:b", "Location", "https://example.com/a:b", false},
		{"NoColon", "", "", true},
		{": value-only", "", "", true},
		{"Name:", "", "", true},
		{"", "", "", true},
	}
	for _, c := range cases {
		name, value, err := parseHeader(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseHeader(%q): expected error", c.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHeader(%q): unexpected error: %v", c.input, err)
			continue
		}
		if name != c.wantName || value != c.wantValue {
			t.Errorf("parseHeader(%q) = (%q, %q), want (%q, %q)",
				c.input, name, value, c.wantName, c.wantValue)
		}
	}
}

// --- humanBytes ---

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{3 << 20, "3.0 MiB"},
		{2 << 30, "2.0 GiB"},
	}
	for _, c := range cases {
		if got := humanBytes(c.input); got != c.want {
			t.Errorf("humanBytes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

// --- loadDeps ---

func TestLoadDeps_ReadsConfigAndRoot(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "textokit.yaml")
	yaml := "network:\n  timeout_ms: 3000\n  user_agent: tester\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := loadDeps(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.cfg.Network.Timeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", d.cfg.Network.Timeout)
	}
	if d.cfg.Network.UserAgent != "tester" {
		t.Errorf("user agent = %q, want tester", d.cfg.Network.UserAgent)
	}
	if d.root != tmp {
		t.Errorf("root = %q, want %q", d.root, tmp)
	}
}

func TestLoadDeps_MissingFileUsesDefaults(t *testing.T) {
	tmp := t.TempDir()
	d, err := loadDeps(filepath.Join(tmp, "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.cfg.Network.UserAgent != "textokit" {
		t.Errorf("user agent = %q, want default", d.cfg.Network.UserAgent)
	}
}

// --- shortcuts command ---

func TestShortcutsCmd_AppliesOverrides(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "textokit.yaml")
	yaml := "shortcuts:\n  file.new: Ctrl+Shift+N\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := shortcutsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"list", "--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "file.new") {
		t.Fatalf("output missing file.new action:\n%s", out)
	}
	if !strings.Contains(out, "Ctrl+Shift+N") {
		t.Errorf("override not applied:\n%s", out)
	}
	if !strings.Contains(out, "* file.new") {
		t.Errorf("overridden action not marked:\n%s", out)
	}
}

func TestShortcutsCmd_DefaultsWithoutConfig(t *testing.T) {
	tmp := t.TempDir()

	cmd := shortcutsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"list", "--config", filepath.Join(tmp, "absent.yaml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "help.check_updates") {
		t.Errorf("default actions missing:\n%s", buf.String())
	}
}

func TestShortcutsSet_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "textokit.yaml")

	set := shortcutsCmd()
	set.SetOut(&bytes.Buffer{})
	set.SetArgs([]string{"set", "edit.find", "Ctrl+Alt+F", "--config", path})
	if err := set.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list := shortcutsCmd()
	var buf bytes.Buffer
	list.SetOut(&buf)
	list.SetArgs([]string{"list", "--config", path})
	if err := list.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Ctrl+Alt+F") {
		t.Errorf("saved override not listed:\n%s", buf.String())
	}
}

func TestShortcutsSet_UnknownAction(t *testing.T) {
	tmp := t.TempDir()

	cmd := shortcutsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"set", "nope.nothing", "Ctrl+X",
		"--config", filepath.Join(tmp, "textokit.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}
