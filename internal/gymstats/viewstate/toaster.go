package viewstate

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Toaster shows transient success/failure notifications for user initiated saves.
type Toaster interface {
	Success(title, message string)
	Error(title, message string)
}

// LogToaster writes notifications to the log.
type LogToaster struct{}

func (LogToaster) Success(title, message string) {
	log.WithField("title", title).Infoln(message)
}

func (LogToaster) Error(title, message string) {
	log.WithField("title", title).Errorln(message)
}

type Toast struct {
	Success bool
	Title   string
	Message string
}

// RecordingToaster keeps every notification, used by front ends that render
// toasts after an operation returns.
type RecordingToaster struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *RecordingToaster) Success(title, message string) {
	r.add(Toast{Success: true, Title: title, Message: message})
}

func (r *RecordingToaster) Error(title, message string) {
	r.add(Toast{Success: false, Title: title, Message: message})
}

func (r *RecordingToaster) add(t Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

// Drain returns recorded toasts and forgets them.
func (r *RecordingToaster) Drain() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	toasts := r.toasts
	r.toasts = nil
	return toasts
}

// Last returns the most recent toast, if any.
func (r *RecordingToaster) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}
