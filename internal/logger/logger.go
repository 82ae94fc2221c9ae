package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the showcase appends its log, relative to the working directory.
const DefaultPath = "logs/portfolio.txt"

// maxLines caps the in-memory history; the file keeps everything.
const maxLines = 256

// Logger keeps recent lines in memory (for the debug overlay) and appends every line to a
// file on disk. An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Infof logs a formatted informational line.
func (l *Logger) Infof(format string, args ...any) {
	l.log("INFO", fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning line.
func (l *Logger) Warnf(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

// log prefixes the line with [timestamp] LEVEL, stores it and appends it to the file.
func (l *Logger) log(level, line string) {
	if l == nil {
		return
	}
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + level + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the newest line, or "" when nothing was logged.
func (l *Logger) Last() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}
