package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProperties(t *testing.T, dir, env, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, env+".properties"), []byte(content), 0o644); err != nil {
		t.Fatalf("write properties: %v", err)
	}
}

func TestReadPropertiesDefaultsWhenFileMissing(t *testing.T) {
	p, err := ReadProperties(t.TempDir(), "local", NewFlagSet("test"))
	if err != nil {
		t.Fatalf("ReadProperties: %v", err)
	}
	cfg := p.Config()
	want := Config{Env: "local", Host: HostWindow, Variant: VariantDifficulty,
		Difficulty: DifficultyMedium, FPS: 60, Sound: true}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
	if p.WatchDifficulty(func(Difficulty) {}, nil) {
		t.Fatalf("nothing should be watched without a properties file")
	}
}

func TestReadPropertiesFromFile(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "dev", "HOST=terminal\nVARIANT=difficulty\nDIFFICULTY=hard\nFPS=30\nSOUND=false\n")

	p, err := ReadProperties(dir, "dev", NewFlagSet("test"))
	if err != nil {
		t.Fatalf("ReadProperties: %v", err)
	}
	cfg := p.Config()
	if cfg.Host != HostTerminal || cfg.Difficulty != DifficultyHard || cfg.FPS != 30 || cfg.Sound {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.File == "" {
		t.Fatalf("File should name the properties file")
	}
}

func TestFlagsOverrideProperties(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "dev", "HOST=terminal\nDIFFICULTY=hard\n")

	fs := NewFlagSet("test")
	if err := fs.Parse([]string{"--difficulty=easy", "--variant=classic"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	p, err := ReadProperties(dir, "dev", fs)
	if err != nil {
		t.Fatalf("ReadProperties: %v", err)
	}
	cfg := p.Config()
	if cfg.Host != HostTerminal {
		t.Fatalf("unchanged flag should not hide the file value, host = %q", cfg.Host)
	}
	if cfg.Variant != VariantClassic || cfg.Difficulty != DifficultyNone {
		t.Fatalf("classic variant should carry no difficulty, got %+v", cfg)
	}
	rules, err := cfg.Rules()
	if err != nil || rules != ClassicRules() {
		t.Fatalf("Rules() = %+v, %v", rules, err)
	}
}

func TestReadPropertiesRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{"difficulty", "DIFFICULTY=brutal\n", ErrUnknownDifficulty},
		{"variant", "VARIANT=tennis\n", ErrUnknownVariant},
		{"host", "HOST=browser\n", nil},
		{"fps", "FPS=0\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProperties(t, dir, "bad", tt.content)
			_, err := ReadProperties(dir, "bad", nil)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestReloadReportsDifficultyChange(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "dev", "DIFFICULTY=easy\n")
	p, err := ReadProperties(dir, "dev", nil)
	if err != nil {
		t.Fatalf("ReadProperties: %v", err)
	}

	if _, changed, err := p.reload(); err != nil || changed {
		t.Fatalf("reload without edit: changed=%v err=%v", changed, err)
	}

	writeProperties(t, dir, "dev", "DIFFICULTY=hard\n")
	if err := p.v.ReadInConfig(); err != nil {
		t.Fatalf("re-read: %v", err)
	}
	d, changed, err := p.reload()
	if err != nil || !changed || d != DifficultyHard {
		t.Fatalf("reload after edit = %q, %v, %v", d, changed, err)
	}
	if p.Config().Difficulty != DifficultyHard || p.Config().Env != "dev" {
		t.Fatalf("config not updated: %+v", p.Config())
	}
}
