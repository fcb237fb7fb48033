package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGot, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve got dir symlink failed: %v", err)
	}
	if realGot != filepath.Join(realTmpDir, defaultLogDirName) {
		t.Fatalf("unexpected log dir: %s", realGot)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
}

func TestNewReleaseWritesToConfiguredFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New(ModeRelease, Options{Dir: tmpDir, Filename: "release.log"})
	log.Info("release-log-test")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), "release-log-test") {
		t.Fatalf("expected log content to contain message, got=%s", string(content))
	}
}

func TestNewCLIWritesToConfiguredFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New(ModeCLI, Options{Dir: tmpDir, Filename: "storefront.log"})
	log.Info("cli-log-test")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "storefront.log"))
	if err != nil {
		t.Fatalf("read cli log failed: %v", err)
	}
	if !strings.Contains(string(content), "cli-log-test") {
		t.Fatalf("expected cli log content to contain message, got=%s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New(ModeDebug, Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug-log-test")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestParseLevel(t *testing.T) {
	if got := parseLevel("warn", ModeRelease).Level(); got != zap.WarnLevel {
		t.Fatalf("want warn got %s", got)
	}
	if got := parseLevel("not-a-level", ModeRelease).Level(); got != zap.InfoLevel {
		t.Fatalf("invalid level should fall back to info, got %s", got)
	}
	if got := parseLevel("error", ModeDebug).Level(); got != zap.DebugLevel {
		t.Fatalf("debug mode should force debug level, got %s", got)
	}
}
