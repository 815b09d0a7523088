package startup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Info("starting services", "count", 3)
	logger.Error(errors.New("oops"), "service failed", "service", "svc")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "starting services", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
	assert.Equal(t, "service failed", entries[1].Message)
	assert.Equal(t, "oops", entries[1].ContextMap()["error"])
}
