package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("BasicLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "TEST", FlagLevel|FlagPrefix)

		logger.Info("Hello %s", "World")

		output := buf.String()
		if !strings.Contains(output, "[INFO]") {
			t.Error("Missing log level")
		}
		if !strings.Contains(output, "[TEST]") {
			t.Error("Missing prefix")
		}
		if !strings.HasSuffix(output, "Hello World\n") {
			t.Errorf("Missing message: %q", output)
		}
	})

	t.Run("LogLevels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		if strings.Contains(output, "debug message") {
			t.Error("Debug message should not be logged")
		}
		if strings.Contains(output, "info message") {
			t.Error("Info message should not be logged")
		}
		if !strings.Contains(output, "warn message") {
			t.Error("Warn message should be logged")
		}
		if !strings.Contains(output, "error message") {
			t.Error("Error message should be logged")
		}
		if logger.Enabled(LogLevelInfo) || !logger.Enabled(LogLevelError) {
			t.Error("Enabled does not match level")
		}
	})

	t.Run("Off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", DefaultFlags)
		logger.SetLevel(LogLevelOff)

		logger.Error("should not appear")

		if buf.Len() > 0 {
			t.Error("Logger at LogLevelOff should not write")
		}
	})

	t.Run("FileInfo", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagShortFile)

		logger.Info("test")

		if !strings.Contains(buf.String(), "logger_test.go:") {
			t.Errorf("Missing caller in output: %s", buf.String())
		}
	})

	t.Run("DefaultLogger", func(t *testing.T) {
		var buf bytes.Buffer
		old := Default().Level()
		SetOutput(&buf)
		SetLevel(LogLevelDebug)
		defer func() {
			SetLevel(old)
			SetOutput(os.Stderr)
		}()
		Default().SetFlags(FlagLevel | FlagShortFile)
		defer Default().SetFlags(DefaultFlags)

		Debug("rate %d", 42)

		output := buf.String()
		if !strings.Contains(output, "[DEBUG]") || !strings.Contains(output, "rate 42") {
			t.Errorf("Default logger output: %q", output)
		}
		if !strings.Contains(output, "logger_test.go:") {
			t.Errorf("Package helper reported the wrong caller: %q", output)
		}
	})
}

func TestLogLevelString(t *testing.T) {
	levels := map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
		LogLevelOff:   "OFF",
		LogLevel(42):  "UNKNOWN",
	}
	for level, want := range levels {
		if level.String() != want {
			t.Errorf("LogLevel(%d).String(): got %q, want %q", level, level.String(), want)
		}
	}
}
