package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	logger.Infof("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.consoleChan == nil {
		return
	}

	// Never block the renderer on a slow reader
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	}:
	default:
	}
}

// consoleHistory keeps the most recent console messages of all renders
type consoleHistory struct {
	mu       sync.Mutex
	limit    int
	messages []ConsoleMessage
}

func newConsoleHistory(limit int) *consoleHistory {
	return &consoleHistory{limit: limit}
}

// Add appends msg, dropping the oldest message once the limit is reached
func (h *consoleHistory) Add(msg ConsoleMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.messages = append(h.messages, msg)
	if over := len(h.messages) - h.limit; over > 0 {
		h.messages = append(h.messages[:0], h.messages[over:]...)
	}
}

// Drain moves every message currently buffered in ch into the history
func (h *consoleHistory) Drain(ch <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-ch:
			h.Add(msg)
		default:
			return
		}
	}
}

// Messages returns a copy of the history, oldest first
func (h *consoleHistory) Messages() []ConsoleMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ConsoleMessage{}, h.messages...)
}
