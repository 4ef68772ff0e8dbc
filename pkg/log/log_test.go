package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	original := logrus.StandardLogger().Out
	t.Cleanup(func() { logrus.SetOutput(original) })

	Configure("debug")
	logrus.SetOutput(&buf)

	ctx, runID := WithRunID(context.Background())
	assert.NotEmpty(t, runID)
	assert.Equal(t, runID, GetRunID(ctx))

	ForContext(ctx).WithField("account_id", "act_1").Info("página obtida")

	out := buf.String()
	assert.Contains(t, out, "run_id="+runID)
	assert.Contains(t, out, "account_id=act_1")
}

func TestForContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	original := logrus.StandardLogger().Out
	t.Cleanup(func() { logrus.SetOutput(original) })

	Configure("info")
	logrus.SetOutput(&buf)

	ctx, requestID := WithRequestID(context.Background())
	ForContext(ctx).Info("requisição")

	assert.Contains(t, buf.String(), "request_id="+requestID)
	assert.NotContains(t, buf.String(), "run_id=")
}

func TestGetRunIDWithoutValue(t *testing.T) {
	assert.Empty(t, GetRunID(context.Background()))
}

func TestConfigureInvalidLevelFallsBackToInfo(t *testing.T) {
	Configure("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
