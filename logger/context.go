package logger

import (
	"sync"

	"github.com/philipp01105/apptemplate/core"
)

// ContextStack holds the fields of the scopes that are currently open.
// Every logger sharing the stack adds the live fields to its entries.
//
// Push and pop are expected to nest on a single goroutine; the mutex
// keeps the stack consistent if that is violated but does not make
// overlapping scopes from different goroutines meaningful.
type ContextStack struct {
	mu     sync.Mutex
	frames []contextFrame
	nextID uint64
}

type contextFrame struct {
	id     uint64
	fields []core.Field
}

// NewContextStack returns an empty stack.
func NewContextStack() *ContextStack {
	return &ContextStack{}
}

// Push opens a scope carrying fields and returns the function that
// closes it. The returned pop removes exactly this frame, even if frames
// pushed later are still open, and does nothing when called again.
func (s *ContextStack) Push(fields ...core.Field) (pop func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.frames = append(s.frames, contextFrame{
		id:     id,
		fields: append([]core.Field(nil), fields...),
	})
	s.mu.Unlock()

	return func() { s.remove(id) }
}

func (s *ContextStack) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].id == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// Len returns the number of open frames.
func (s *ContextStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Fields returns a copy of the live fields, outermost frame first.
func (s *ContextStack) Fields() []core.Field {
	return s.AppendFields(nil)
}

// AppendFields appends the live fields to dst, outermost frame first.
func (s *ContextStack) AppendFields(dst []core.Field) []core.Field {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.frames {
		dst = append(dst, f.fields...)
	}
	return dst
}

// LogContext runs fn with fields attached to every entry logged through
// the registry while fn runs. The scope is closed on every exit path,
// including errors and panics, and fn's error is returned unchanged.
//
// A nil l falls back to Default(). A logger without a context stack
// passes fn a child logger carrying the fields instead.
func LogContext(l *Logger, fields []core.Field, fn func(*Logger) error) error {
	if l == nil {
		l = Default()
	}
	if l == nil || l.context == nil {
		return fn(l.With(fields...))
	}

	pop := l.context.Push(fields...)
	defer pop()
	return fn(l)
}
