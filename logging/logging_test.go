package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingDisabled(t *testing.T) {
	cleanup, err := SetupLogging("")
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	if IsDebugMode() {
		t.Fatal("debug mode without a log file")
	}
}

func TestSetupLoggingWritesLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	if err != nil {
		t.Fatal(err)
	}
	if !IsDebugMode() {
		t.Fatal("debug mode not enabled")
	}
	Debugf("reveal=%d", 50)
	Warnf("careful")
	cleanup()
	if IsDebugMode() {
		t.Fatal("cleanup left debug mode on")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"DEBUG reveal=50", "WARN careful", "logging_test.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
