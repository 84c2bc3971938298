package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestShowPrintsCatalogStats(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "--config", env.configPath, "show", "--json")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}

	var stats struct {
		Records  int `json:"records"`
		Variants int `json:"variants"`
		Passing  int `json:"passing"`
	}
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("parse stats: %v\n%s", err, out)
	}
	if stats.Records != 6 || stats.Variants != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestShowSingleRecord(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "--config", env.configPath, "show", "原神-中文-钟离_ZH")
	if err != nil {
		t.Fatalf("show record: %v\n%s", err, out)
	}
	requireContains(t, out, "璃月")
	if strings.Contains(out, `\u`) {
		t.Fatalf("expected unescaped record output:\n%s", out)
	}

	if out, err := runCLI(t, "--config", env.configPath, "show", "no-such-key"); err == nil {
		t.Fatalf("expected error for unknown key, got:\n%s", out)
	}
}
