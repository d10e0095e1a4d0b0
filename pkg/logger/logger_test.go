package logger

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func newBufLogger(debug bool) (*StandardLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := log.New(buf, "", 0)
	if debug {
		return NewDebugLogger(l), buf
	}
	return NewStandardLogger(l), buf
}

func TestStandardLogger_Prefixes(t *testing.T) {
	l, buf := newBufLogger(false)

	l.Info("loaded %d sources", 2)
	l.Warning("skipped %d rows", 3)
	l.Error("load failed: %v", "boom")

	out := buf.String()
	for _, want := range []string{
		"[INFO] loaded 2 sources",
		"[WARNING] skipped 3 rows",
		"[ERROR] load failed: boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestStandardLogger_DebugDroppedByDefault(t *testing.T) {
	l, buf := newBufLogger(false)
	l.Debug("page size %d", 10)
	if buf.Len() != 0 {
		t.Errorf("expected no debug output, got: %s", buf.String())
	}
}

func TestStandardLogger_DebugEnabled(t *testing.T) {
	l, buf := newBufLogger(true)
	l.Debug("page size %d", 10)
	if !strings.Contains(buf.String(), "[DEBUG] page size 10") {
		t.Errorf("expected debug output, got: %s", buf.String())
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestFileLogger_ClosesOnce(t *testing.T) {
	w := &closeRecorder{}
	l := NewFileLogger(w, false)
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}
	if w.closed != 1 {
		t.Errorf("expected writer closed once, got %d", w.closed)
	}
	if !strings.Contains(w.String(), "[INFO] hello") {
		t.Errorf("expected message in file output, got: %s", w.String())
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("test")
	l.Info("test")
	l.Warning("test")
	l.Error("test")
	if err := l.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}

func TestMockLogger_RecordsCalls(t *testing.T) {
	l := NewMockLogger()

	l.Debug("debug %d", 0)
	l.Info("info %d", 1)
	l.Info("info %d", 2)
	l.Warning("warn %s", "test")
	l.Error("err %v", "fail")

	if len(l.DebugCalls) != 1 || l.DebugCalls[0] != "debug 0" {
		t.Errorf("expected one 'debug 0' call, got %v", l.DebugCalls)
	}
	if len(l.InfoCalls) != 2 || l.InfoCalls[1] != "info 2" {
		t.Errorf("expected two info calls, got %v", l.InfoCalls)
	}
	if len(l.WarningCalls) != 1 || l.WarningCalls[0] != "warn test" {
		t.Errorf("expected 'warn test', got %v", l.WarningCalls)
	}
	if len(l.ErrorCalls) != 1 || l.ErrorCalls[0] != "err fail" {
		t.Errorf("expected 'err fail', got %v", l.ErrorCalls)
	}
}

func TestMultiLogger_BroadcastsToAll(t *testing.T) {
	mock1 := NewMockLogger()
	mock2 := NewMockLogger()

	multi := NewMultiLogger(mock1, nil, mock2)
	multi.Debug("debug msg")
	multi.Info("info msg")
	multi.Warning("warn msg")
	multi.Error("error msg")

	for i, m := range []*MockLogger{mock1, mock2} {
		if len(m.DebugCalls) != 1 || len(m.InfoCalls) != 1 ||
			len(m.WarningCalls) != 1 || len(m.ErrorCalls) != 1 {
			t.Errorf("mock%d missed messages: %+v", i+1, m)
		}
	}
}

type failingCloseLogger struct {
	NopLogger
	err error
}

func (f *failingCloseLogger) Close() error { return f.err }

func TestMultiLogger_Close_ReturnsFirstError(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")
	mock := NewMockLogger()

	multi := NewMultiLogger(&failingCloseLogger{err: err1}, mock, &failingCloseLogger{err: err2})

	err := multi.Close()
	if !errors.Is(err, err1) {
		t.Errorf("expected first error %v, got %v", err1, err)
	}
	if !mock.CloseCalled {
		t.Error("expected mock logger to be closed even after first error")
	}
}

func TestMultiLogger_EmptyLoggers(t *testing.T) {
	multi := NewMultiLogger()
	multi.Info("test")
	if err := multi.Close(); err != nil {
		t.Errorf("expected nil error, got: %v", err)
	}
}
