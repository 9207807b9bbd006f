package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	SetupTestLogger()
	logrus.SetOutput(&buf)

	ctx, _ := WithCorrelationID(context.Background(), "req-abc")
	ForContext(ctx).Info("requisição recebida")

	assert.Contains(t, buf.String(), "correlation_id=req-abc")
	assert.Contains(t, buf.String(), "requisição recebida")
}

func TestSetup_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	Setup("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
