package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default path of the diagnostics log file, relative to
// the working directory (project root when run via go run ./cmd/cubeflyer).
const LogFilePath = "logs/flight.txt"

// Logger is the diagnostics sink: it stores lines in memory (for the
// on-screen console), appends them to a file on disk, and echoes them to
// an optional writer (stdout in the demo). It is a debugging aid, not a
// stable interface.
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	lines []string
}

// New returns a Logger appending to the file at path and echoing each line
// to echo (may be nil). The file's directory is created if missing.
func New(path string, echo io.Writer) *Logger {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, echo: echo, lines: make([]string, 0)}
}

// Log appends a line to the in-memory store, the log file, and the echo
// writer. Each entry is prefixed with [timestamp] using computer time.
// File and echo errors are ignored; diagnostics never fail the frame.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.echo != nil {
		_, _ = io.WriteString(l.echo, stamped+"\n")
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
