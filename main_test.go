package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type syncRecorder struct {
	bytes.Buffer
	synced bool
}

func (s *syncRecorder) Sync() error {
	s.synced = true
	return nil
}

func newRecordingLogger() (*zap.Logger, *syncRecorder) {
	out := &syncRecorder{}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), out, zapcore.DebugLevel)
	return zap.New(core), out
}

func TestExitCodeFlushesOnFailure(t *testing.T) {
	t.Parallel()

	log, out := newRecordingLogger()
	if got := exitCode(log, errors.New("listen tcp :8080: address already in use")); got != 1 {
		t.Fatalf("exitCode = %d, want 1", got)
	}
	if !out.synced {
		t.Fatal("logger was not synced before exit")
	}
	if !strings.Contains(out.String(), "address already in use") {
		t.Fatalf("log output = %q, want the run error", out.String())
	}
}

func TestExitCodeCleanStop(t *testing.T) {
	t.Parallel()

	log, out := newRecordingLogger()
	if got := exitCode(log, nil); got != 0 {
		t.Fatalf("exitCode = %d, want 0", got)
	}
	if !out.synced {
		t.Fatal("logger was not synced on clean stop")
	}
	if out.Len() != 0 {
		t.Fatalf("log output = %q, want nothing", out.String())
	}
}
