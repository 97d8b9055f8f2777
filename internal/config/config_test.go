package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "slate" {
		t.Fatalf("expected default %s to be slate, got %q", KeyTheme, got)
	}
	if got := GetString(KeyMode); got != "auto" {
		t.Fatalf("expected default %s to be auto, got %q", KeyMode, got)
	}
	if got := GetInt(KeyMaxVisible); got != DefaultMaxVisible {
		t.Fatalf("expected default %s to be %d, got %d", KeyMaxVisible, DefaultMaxVisible, got)
	}
	if GetBool(KeyCopyOnCommit) {
		t.Fatalf("expected default %s to be false", KeyCopyOnCommit)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".switchboard"))
	projectCfg := filepath.Join(projectDir, ".switchboard", "config.yaml")
	writeFile(t, projectCfg, `
theme: catppuccin
mode: immediate
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: github
mode: deferred
max-visible: 3
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "catppuccin" {
		t.Fatalf("expected project config to win for %s, got %q", KeyTheme, got)
	}
	if got := GetString(KeyMode); got != "immediate" {
		t.Fatalf("expected project config to win for %s, got %q", KeyMode, got)
	}
	if got := GetInt(KeyMaxVisible); got != 3 {
		t.Fatalf("expected user config max-visible to survive the merge, got %d", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".switchboard"))
	projectCfg := filepath.Join(projectDir, ".switchboard", "config.yaml")
	writeFile(t, projectCfg, `
theme: catppuccin
copy-on-commit: false
`)

	t.Setenv("SWB_COPY_ON_COMMIT", "true")
	t.Setenv("SWB_THEME", "github")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if !GetBool(KeyCopyOnCommit) {
		t.Fatalf("expected environment variable to override %s", KeyCopyOnCommit)
	}
	if got := GetString(KeyTheme); got != "github" {
		t.Fatalf("expected env override for %s, got %q", KeyTheme, got)
	}

	overrides := map[string]any{
		KeyCopyOnCommit: false,
		KeyMaxVisible:   9,
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if GetBool(KeyCopyOnCommit) {
		t.Fatalf("expected CLI override to set %s=false", KeyCopyOnCommit)
	}
	if got := GetInt(KeyMaxVisible); got != 9 {
		t.Fatalf("expected override for %s = 9, got %d", KeyMaxVisible, got)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, configDirName, "config.yaml")
	setUserConfigPathOverride(userCfg)

	if err := SaveTheme("github"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}

	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if string(data) == "" {
		t.Fatal("expected saved config to have content")
	}

	reset()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetString(KeyTheme); got != "github" {
		t.Fatalf("expected saved theme github, got %q", got)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
