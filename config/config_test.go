package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/config"
	"github.com/t14raptor/es3/parser/scanner"
)

func TestParse(t *testing.T) {
	src := `
compat:
  js: "1.5"
  sgml_comments: true
log:
  level: debug
trace: true
`
	cfg, err := config.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := scanner.Compat{SGMLComments: true, JS: scanner.JS15}
	if got := cfg.ScannerCompat(); got != want {
		t.Errorf("ScannerCompat() = %+v, want %+v", got, want)
	}
	if got := cfg.LogLevel(); got != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", got)
	}
	if !cfg.Trace {
		t.Error("Trace = false")
	}
}

func TestParseDefaults(t *testing.T) {
	for _, src := range []string{"", "trace: false\n"} {
		cfg, err := config.Parse([]byte(src))
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if cfg != config.Default() {
			t.Errorf("Parse(%q) = %+v, want defaults", src, cfg)
		}
		if cfg.ScannerCompat() != (scanner.Compat{}) {
			t.Errorf("Parse(%q).ScannerCompat() = %+v", src, cfg.ScannerCompat())
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"compat: {js: \"2.0\"}", []string{"compat.js"}},
		{"log: {level: loud}", []string{"log.level"}},
		{"compat: {js: \"1.9\"}\nlog: {level: loud}", []string{"compat.js", "log.level"}},
		{"bogus: 1", []string{"bogus"}},
	}

	for _, tt := range tests {
		_, err := config.Parse([]byte(tt.src))
		if err == nil {
			t.Errorf("Parse(%q) succeeded", tt.src)
			continue
		}
		for _, w := range tt.want {
			if !strings.Contains(err.Error(), w) {
				t.Errorf("Parse(%q) error %q does not mention %q", tt.src, err, w)
			}
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es3.yaml")
	if err := os.WriteFile(path, []byte("compat:\n  js: \"1.2\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScannerCompat().JS != scanner.JS12 {
		t.Errorf("JS = %v, want 1.2", cfg.ScannerCompat().JS)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}
