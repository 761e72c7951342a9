// internal/logger/logger_test.go

package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "bank").Info("account created", "iban", "ES9121000418450200051332")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries=%d want=1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "bank" || ctx["iban"] != "ES9121000418450200051332" {
		t.Fatalf("fields=%v", ctx)
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) err=%v", mode, err)
		}
		l.Debug("probe")
	}
	Nop().Error("discarded")
}
