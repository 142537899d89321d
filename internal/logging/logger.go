package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"vmatgen/internal/config"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
	now     func() time.Time

	levels map[string]*color.Color
}

// NewLogger initializes colors from cfg and optionally opens cfg.LogFile.
// Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := newLogger(os.Stdout, os.Stderr, cfg.Verbose)
	l.setColor(cfg.Color)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		l.file = f
	}

	return l, nil
}

// NewWriter returns an uncolored logger writing every level to w.
func NewWriter(w io.Writer, verbose bool) *Logger {
	l := newLogger(w, w, verbose)
	l.setColor(config.ColorNever)
	return l
}

func newLogger(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		now:     time.Now,
		levels: map[string]*color.Color{
			"INFO":    color.New(color.FgBlue, color.Bold),
			"SUCCESS": color.New(color.FgGreen, color.Bold),
			"WARN":    color.New(color.FgYellow, color.Bold),
			"ERROR":   color.New(color.FgRed, color.Bold),
			"DEBUG":   color.New(color.FgCyan),
		},
	}
}

// setColor enables or disables level colors for mode.
func (l *Logger) setColor(mode string) {
	enable := false
	switch mode {
	case config.ColorAlways:
		enable = true
	case config.ColorAuto, "":
		enable = !color.NoColor
	}
	for _, c := range l.levels {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+l.levels[level].Sprint("["+level+"]")+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to the error stream.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
