package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

type cliTestEnv struct {
	configPath  string
	catalogPath string
	outputPath  string
}

// setupCLITestEnv writes a config file and a small source catalog under a
// temp directory. Curation criteria stay at their defaults.
func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()
	base := t.TempDir()

	env := cliTestEnv{
		configPath:  filepath.Join(base, "voxpick.toml"),
		catalogPath: filepath.Join(base, "catalog.json"),
		outputPath:  filepath.Join(base, "elite.json"),
	}

	configBody := fmt.Sprintf(`[paths]
catalog_path = %q
output_path = %q
log_dir = %q
`, env.catalogPath, env.outputPath, filepath.Join(base, "logs"))
	if err := os.WriteFile(env.configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	catalogBody := `{
  "原神-中文-钟离_ZH": {"tags": ["璃月"], "emotion": ["a", "b", "c", "d", "e", "f", "g"]},
  "原神-中文-钟离": {"tags": ["岩"], "emotion": ["a", "b", "c", "d", "e", "f", "g"]},
  "原神-英语-Zhongli": {"tags": [], "emotion": ["a", "b", "c", "d", "e", "f", "g"]},
  "原神-中文-路人甲": {"tags": ["路人"], "emotion": ["a", "b", "c", "d", "e", "f", "g"]},
  "原神-中文-NPC": {"tags": [], "emotion": ["a", "b", "c", "d", "e", "f", "g"]},
  "原神-中文-香菱": {"tags": ["璃月"], "emotion": ["a", "b", "c"]}
}`
	if err := os.WriteFile(env.catalogPath, []byte(catalogBody), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return env
}
