// Package notify models the user-facing outcome of a state-store operation.
// Remote failures never escape a store as errors; every operation resolves
// to a Notice the caller can surface, with local state left consistent with
// whichever side last succeeded.
package notify

import "log"

type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelError
)

// Machine codes carried on error notices.
const (
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicate    = "DUPLICATE"
	CodeRemoteError  = "REMOTE_ERROR"
	CodeBadInput     = "BAD_REQUEST"
)

type Notice struct {
	Level   Level
	Code    string
	Message string
}

func Success(message string) Notice {
	return Notice{Level: LevelSuccess, Message: message}
}

// Info marks a deliberate no-op, e.g. adding a book that is already in a
// list. Not an error.
func Info(code, message string) Notice {
	return Notice{Level: LevelInfo, Code: code, Message: message}
}

func Error(code, message string) Notice {
	return Notice{Level: LevelError, Code: code, Message: message}
}

func (n Notice) OK() bool {
	return n.Level != LevelError
}

// Notifier receives every notice a store emits. The HTTP layer turns them
// into response envelopes; the default sink just logs.
type Notifier interface {
	Notify(n Notice)
}

type logNotifier struct{}

func (logNotifier) Notify(n Notice) {
	switch n.Level {
	case LevelError:
		log.Printf("notify error code=%s message=%q", n.Code, n.Message)
	case LevelInfo:
		log.Printf("notify info code=%s message=%q", n.Code, n.Message)
	default:
		log.Printf("notify success message=%q", n.Message)
	}
}

// NewLogNotifier returns the logging sink used when no other surface is
// wired.
func NewLogNotifier() Notifier {
	return logNotifier{}
}
