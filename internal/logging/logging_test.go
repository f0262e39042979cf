package logging_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/nutridiary/internal/logging"
	"github.com/2beens/nutridiary/pkg"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("WARN"))
	assert.Equal(t, logrus.ErrorLevel, logging.GetLevel(" error "))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel(""))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel("verbose"))
}

func TestOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, logging.Output("", true))

	logFile := filepath.Join(t.TempDir(), "service")
	_, isCombined := logging.Output(logFile, true).(*pkg.CombinedWriter)
	assert.True(t, isCombined)

	w := logging.Output(logFile, false)
	_, err := w.Write([]byte("score computed\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Equal(t, "score computed\n", string(content))
}

func TestSentryHook_Fire(t *testing.T) {
	var captured []*sentry.Event
	hook := logging.NewSentryHookWithCapture(
		[]logrus.Level{logrus.ErrorLevel},
		func(event *sentry.Event) *sentry.EventID {
			captured = append(captured, event)
			id := sentry.EventID("test-event")
			return &id
		},
	)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.SetOutput(&discard{})
	logger.AddHook(hook)

	logger.WithError(errors.New("db down")).WithField("user", "u1").Error("save record failed")
	logger.Warn("not forwarded")

	require.Len(t, captured, 1)
	event := captured[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "save record failed", event.Message)
	assert.Equal(t, "u1", event.Extra["user"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "db down", event.Exception[0].Value)
}

type discard struct{}

func (d *discard) Write(p []byte) (int, error) {
	return len(p), nil
}
