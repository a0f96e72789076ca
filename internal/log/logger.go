package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// Field names shared by every run-scoped log line.
const (
	FieldRunID   = "run_id"
	FieldTrigger = "trigger"
)

// PrettyFormatter renders entries as one coloured line for terminals.
// run_id is shortened so per-row lines stay readable.
type PrettyFormatter struct{}

// Format renders a logrus entry as a pretty, human-readable line.
func (f *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	icon, color := levelStyle(entry.Level)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s %s%s%s %s",
		colorGray, entry.Time.Format("15:04:05"), colorReset,
		color, icon, colorReset,
		entry.Message,
	)
	for _, k := range keys {
		v := entry.Data[k]
		if k == FieldRunID {
			v = shortRunID(fmt.Sprint(v))
		}
		fmt.Fprintf(&b, " %s%s%s=%v", colorCyan, k, colorReset, v)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelStyle(level logrus.Level) (string, string) {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "✗", colorRed
	case logrus.WarnLevel:
		return "⚠", colorYellow
	case logrus.InfoLevel:
		return "•", colorGreen
	default:
		return "·", colorGray
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// NewLogger creates a configured logrus logger writing to stdout.
func NewLogger(level string, format string) *logrus.Logger {
	logger := logrus.New()
	Configure(logger, os.Stdout, level, format)
	return logger
}

// Configure sets output, format, and level on an existing logger.
func Configure(logger *logrus.Logger, out io.Writer, level string, format string) {
	if out != nil {
		logger.SetOutput(out)
	}
	logger.SetFormatter(formatterFor(format))
	logger.SetLevel(parseLevel(level))
}

// ConfigureStandard applies the settings to the process-wide logrus logger.
func ConfigureStandard(level string, format string) {
	Configure(logrus.StandardLogger(), os.Stdout, level, format)
}

// ForRun returns an entry tagged with the run id and trigger.
func ForRun(runID string, trigger models.Trigger) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		FieldRunID:   runID,
		FieldTrigger: trigger,
	})
}

func formatterFor(format string) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{}
	case "pretty":
		return &PrettyFormatter{}
	default:
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		}
	}
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
