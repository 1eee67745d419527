// Package notify carries the short user-visible messages that describe the
// outcome of an action ("Hemp Tote Bag added to cart").
package notify

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
)

type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(n Notice)
}

func Successf(n Notifier, format string, args ...any) {
	n.Notify(Notice{Level: Success, Message: fmt.Sprintf(format, args...)})
}

func Errorf(n Notifier, format string, args ...any) {
	n.Notify(Notice{Level: Error, Message: fmt.Sprintf(format, args...)})
}

// Buffer collects notices until they are drained.
type Buffer struct {
	mu      sync.Mutex
	notices []Notice
}

func (b *Buffer) Notify(n Notice) {
	b.mu.Lock()
	b.notices = append(b.notices, n)
	b.mu.Unlock()
}

// Drain returns the buffered notices in order and empties the buffer.
func (b *Buffer) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.notices
	b.notices = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

type logNotifier struct {
	logger *zap.Logger
}

// Log writes every notice to logger at debug level.
func Log(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(n Notice) {
	l.logger.Debug("notice", zap.String("level", string(n.Level)), zap.String("message", n.Message))
}

type multi []Notifier

// Multi fans a notice out to every notifier in order.
func Multi(ns ...Notifier) Notifier {
	return multi(ns)
}

func (m multi) Notify(n Notice) {
	for _, x := range m {
		x.Notify(n)
	}
}

// Discard drops every notice.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notice) {}
