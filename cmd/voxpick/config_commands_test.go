package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite refuses to clobber the file.
	if out, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatalf("expected error on existing config, got:\n%s", out)
	}

	if out, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v\n%s", err, out)
	}
}

func TestConfigPathReportsResolvedFile(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "--config", env.configPath, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v\n%s", err, out)
	}
	requireContains(t, out, env.configPath)
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "--config", env.configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	requireContains(t, out, "min_emotion_count")
	requireContains(t, out, env.catalogPath)
}
