package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type LogEntry struct {
	ID        int       `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Entries kept in memory for Recent.
const historySize = 256

var (
	mu      sync.Mutex
	level   = LevelInfo
	out     = log.New(log.Writer(), "", log.LstdFlags)
	history []LogEntry
	nextID  = 1
)

func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

func SetOutput(w io.Writer) {
	mu.Lock()
	out.SetOutput(w)
	mu.Unlock()
}

func logMessage(l Level, message, details string) {
	mu.Lock()
	defer mu.Unlock()

	if l < level {
		return
	}

	// In the browser this ends up in the console.
	if details != "" {
		out.Printf("[%s] %s %s", l, message, details)
	} else {
		out.Printf("[%s] %s", l, message)
	}

	history = append(history, LogEntry{
		ID:        nextID,
		Level:     l.String(),
		Message:   message,
		Details:   details,
		CreatedAt: time.Now(),
	})
	nextID++
	if len(history) > historySize {
		history = history[len(history)-historySize:]
	}
}

func Info(message string, args ...interface{}) {
	logMessage(LevelInfo, fmt.Sprintf(message, args...), "")
}

func Warn(message string, args ...interface{}) {
	logMessage(LevelWarn, fmt.Sprintf(message, args...), "")
}

func Error(message string, args ...interface{}) {
	logMessage(LevelError, fmt.Sprintf(message, args...), "")
}

func Debug(message string, args ...interface{}) {
	logMessage(LevelDebug, fmt.Sprintf(message, args...), "")
}

// With logs at l with structured details appended as key=value pairs.
func With(l Level, message string, kv ...interface{}) {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
	}
	logMessage(l, message, b.String())
}

// Recent returns up to limit entries, newest first.
func Recent(limit int) []LogEntry {
	mu.Lock()
	defer mu.Unlock()

	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}
	logs := make([]LogEntry, 0, limit)
	for i := len(history) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, history[i])
	}
	return logs
}

// Reset drops the history. Used by tests.
func Reset() {
	mu.Lock()
	history = nil
	nextID = 1
	mu.Unlock()
}
