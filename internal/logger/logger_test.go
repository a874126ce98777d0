package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitLoggerWritesFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	logFile := filepath.Join(t.TempDir(), "logs", "app.log")
	InitLogger(Options{Level: "info", File: logFile})

	Info("bathtub inserted", "id", 1)
	Debug("not written at info level")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"bathtub inserted"`) || !strings.Contains(out, `"id":1`) {
		t.Errorf("log file missing entry: %s", out)
	}
	if strings.Contains(out, "not written") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestFanoutRespectsLevels(t *testing.T) {
	var quiet, loud bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&loud, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	l := slog.New(h).With("component", "store")

	l.Info("opened")

	if quiet.Len() != 0 {
		t.Errorf("error-level handler received info record: %s", quiet.String())
	}
	if !strings.Contains(loud.String(), "component=store") {
		t.Errorf("debug-level handler missing record attrs: %s", loud.String())
	}
}
