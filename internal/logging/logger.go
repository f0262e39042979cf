package logging

import (
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/nutridiary/pkg"
)

const maxLogFileSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger: level, format, output and the
// optional sentry forwarding of error level entries.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              params.SentryDSN,
			Environment:      params.Environment,
			ServerName:       params.SentryServerName,
			TracesSampleRate: 1.0,
		}); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry hook added")
		}
	}

	logrus.SetOutput(Output(params.LogFileName, params.LogToStdout))
}

// Output returns the log destination: stdout when no file is given, otherwise
// a size rotated file, tee'd to stdout if asked.
func Output(logFileName string, toStdout bool) io.Writer {
	if logFileName == "" {
		return os.Stdout
	}
	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	rotatingFile := &lumberjack.Logger{
		Filename:  logFileName,
		MaxSize:   maxLogFileSizeMB,
		LocalTime: false,
		Compress:  true,
	}
	if toStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotatingFile)
	}
	return rotatingFile
}

// GetLevel parses level names case-insensitively, defaulting to trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
