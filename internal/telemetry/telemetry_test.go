package telemetry

import (
	"bytes"
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitOtel_Disabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{}, nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOtel_LocalTraceExport(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: true, ServiceName: "tic-tac-toe-test"}, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "room.Play")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "room.Play")
	assert.Contains(t, buf.String(), "tic-tac-toe-test")
}
