// internal/feedback/feedback.go
// Package feedback captures free-text feedback on models for the current
// session. Nothing is persisted beyond the ordinary session log.
package feedback

import (
	"errors"
	"strings"
	"time"

	"github.com/mwiater/gallery/internal/logging"
)

// ErrEmptyFeedback rejects blank submissions.
var ErrEmptyFeedback = errors.New("feedback text is empty")

// Entry is one feedback submission.
type Entry struct {
	Model       string
	Text        string
	SubmittedAt time.Time
}

// Recorder accepts feedback submissions.
type Recorder interface {
	Record(model, text string) (Entry, error)
}

// LogRecorder writes each submission to the session log and keeps an
// in-memory list for the lifetime of the session.
type LogRecorder struct {
	entries []Entry
	now     func() time.Time
}

// NewLogRecorder returns an empty session recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{now: time.Now}
}

// Record validates and stores a submission, logging it as it arrives.
func (r *LogRecorder) Record(model, text string) (Entry, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Entry{}, ErrEmptyFeedback
	}

	entry := Entry{
		Model:       strings.TrimSpace(model),
		Text:        trimmed,
		SubmittedAt: r.now(),
	}
	r.entries = append(r.entries, entry)
	logging.LogFeedback(entry.Model, entry.Text)
	return entry, nil
}

// Entries returns the submissions captured so far this session, in order.
func (r *LogRecorder) Entries() []Entry {
	return r.entries
}
