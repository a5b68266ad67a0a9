package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/apptemplate/core"
)

func TestContextStack_PushPop(t *testing.T) {
	s := NewContextStack()

	popOuter := s.Push(String("a", "1"))
	popInner := s.Push(String("b", "2"), String("c", "3"))

	if got := keysOf(s.Fields()); got != "a,b,c" {
		t.Errorf("Fields() = %s, want a,b,c", got)
	}

	popInner()
	popInner()
	if got := keysOf(s.Fields()); got != "a" {
		t.Errorf("after inner pop Fields() = %s, want a", got)
	}

	popOuter()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestContextStack_OutOfOrderPop(t *testing.T) {
	s := NewContextStack()
	popA := s.Push(String("a", "1"))
	popB := s.Push(String("b", "2"))

	popA()
	if got := keysOf(s.Fields()); got != "b" {
		t.Errorf("Fields() = %s, want b", got)
	}
	popA()
	popB()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestContextStack_PushCopiesFields(t *testing.T) {
	s := NewContextStack()
	fields := []core.Field{String("k", "before")}
	pop := s.Push(fields...)
	defer pop()

	fields[0].Str = "after"
	if s.Fields()[0].Str != "before" {
		t.Error("Push kept a reference to the caller's slice")
	}
}

func keysOf(fields []core.Field) string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return strings.Join(keys, ",")
}

func TestLogContext_ScopesFields(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)
	log := reg.Get("app")
	other := reg.Get("worker")

	errStep := errors.New("step failed")
	err := LogContext(log, []core.Field{String("request_id", "abc")}, func(l *Logger) error {
		l.Info("inside")
		other.Info("inside other logger")
		return errStep
	})
	log.Info("after")

	if err != errStep {
		t.Errorf("LogContext() error = %v, want the function's error unchanged", err)
	}

	records := readJSONLines(t, reg)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for _, rec := range records[:2] {
		if rec["request_id"] != "abc" {
			t.Errorf("record inside scope lacks request_id: %v", rec)
		}
	}
	if _, ok := records[2]["request_id"]; ok {
		t.Errorf("record after scope still has request_id: %v", records[2])
	}
	if reg.Context().Len() != 0 {
		t.Errorf("context stack not empty: %d frames", reg.Context().Len())
	}
}

func TestLogContext_PopsOnPanic(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)
	log := reg.Get("app")

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = LogContext(log, []core.Field{String("request_id", "abc")}, func(*Logger) error {
			panic("boom")
		})
	}()

	if reg.Context().Len() != 0 {
		t.Error("frame left on the stack after a panic")
	}
}

func TestLogContext_Nested(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)
	log := reg.Get("app")

	_ = LogContext(log, []core.Field{String("user", "alice")}, func(l *Logger) error {
		return LogContext(l, []core.Field{String("step", "charge")}, func(l *Logger) error {
			l.Info("nested")
			return nil
		})
	})

	rec := readJSONLines(t, reg)[0]
	if rec["user"] != "alice" || rec["step"] != "charge" {
		t.Errorf("record = %v, want both scopes' fields", rec)
	}
}

func TestLogContext_WithoutStack(t *testing.T) {
	h := &memHandler{}
	log := NewBuilder().WithHandler(h).Build()

	_ = LogContext(log, []core.Field{String("request_id", "abc")}, func(l *Logger) error {
		l.Info("inside")
		return nil
	})
	log.Info("after")

	if _, ok := h.entries[0].Field("request_id"); !ok {
		t.Error("entry inside scope lacks request_id")
	}
	if _, ok := h.entries[1].Field("request_id"); ok {
		t.Error("entry after scope has request_id")
	}
}

func TestLogContext_FallsBackToDefault(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)
	SetDefault(reg)
	t.Cleanup(func() { SetDefault(nil) })

	err := LogContext(nil, []core.Field{String("request_id", "abc")}, func(l *Logger) error {
		if l != Default() {
			t.Error("scope did not receive the default logger")
		}
		l.Info("inside")
		return errTest
	})
	if err != errTest {
		t.Fatalf("LogContext() error = %v", err)
	}
	Info("after")

	records := readJSONLines(t, reg)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["request_id"] != "abc" || records[0]["logger"] != DefaultLoggerName {
		t.Errorf("inside record = %v", records[0])
	}
	if _, ok := records[1]["request_id"]; ok {
		t.Errorf("after record = %v, want no request_id", records[1])
	}
}
