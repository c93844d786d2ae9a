package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Console: &buf})
	if nil != err {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")
	l.Sync()
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatal(buf.String())
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "maniaview.log")
	l, err := New(Config{Level: "DEBUG", OutputPath: path, MaxSize: 1})
	if nil != err {
		t.Fatal(err)
	}
	l.Debug("frame")
	l.Sync()
	data, err := os.ReadFile(path)
	if nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"frame"`) {
		t.Fatal(string(data))
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); nil == err {
		t.Fatal("expected an error")
	}
}
