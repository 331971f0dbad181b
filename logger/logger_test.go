package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/pingpong/config"
	"github.com/sirupsen/logrus"
)

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	log, err := New(config.LogConfig{Level: "Debug", File: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level %s, want debug", log.GetLevel())
	}

	Session(log).WithField("winner", "player one").Info("round over")
	if err := Close(log); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var line map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &line); err != nil {
		t.Fatalf("log line is not JSON: %q", data)
	}
	if line["msg"] != "round over" || line["winner"] != "player one" {
		t.Errorf("unexpected log line %v", line)
	}
	if s, _ := line["session"].(string); len(s) != 36 {
		t.Errorf("session id %q is not a uuid", line["session"])
	}
}

func TestNewStderrAndLevels(t *testing.T) {
	log, err := New(config.LogConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Out != os.Stderr {
		t.Error("expected stderr output without a log file")
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("default level %s, want info", log.GetLevel())
	}
	if err := Close(log); err != nil {
		t.Errorf("Close on stderr: %v", err)
	}

	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
