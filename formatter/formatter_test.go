package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/apptemplate/core"
)

var fixedTime = time.Date(2026, 10, 16, 9, 30, 0, 123000000, time.UTC)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.InfoLevel,
		Logger:  "main",
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-10-16 09:30:00.123 [INFO    ] main - test message\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_WithFields(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Logger:  "main",
		Message: "test",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "[WARNING ]") {
		t.Errorf("Expected '[WARNING ]' in output, got: %s", output)
	}
	if !strings.Contains(output, "test key1=value1 key2=42") {
		t.Errorf("Expected fields after message, got: %s", output)
	}
}

func TestTextFormatter_WithCaller(t *testing.T) {
	f := NewTextFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Logger:  "worker",
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "worker:file.go:123 - test") {
		t.Errorf("Expected caller info in output, got: %s", output)
	}
}

func TestTextFormatter_TimestampFormat(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: time.RFC3339})

	result, _ := f.Format(&core.Entry{Time: fixedTime, Level: core.ErrorLevel, Logger: "x", Message: "m"})
	if !strings.HasPrefix(string(result), "2026-10-16T09:30:00Z [ERROR   ]") {
		t.Errorf("unexpected prefix: %s", result)
	}
}

func TestConsoleFormatter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(ConsoleConfig{Writer: &buf})

	result, err := f.Format(&core.Entry{
		Time:    fixedTime,
		Level:   core.ErrorLevel,
		Logger:  "main",
		Message: "boom",
		Fields:  []core.Field{{Key: "attempt", Type: core.IntType, Int64: 3}},
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-10-16 09:30:00.123 [ERROR   ] main: boom attempt=3\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestConsoleFormatter_ForceColor(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(ConsoleConfig{Writer: &buf, ForceColor: true})

	for _, lvl := range core.Levels() {
		result, err := f.Format(&core.Entry{Time: fixedTime, Level: lvl, Logger: "main", Message: "colored"})
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		out := string(result)
		if !strings.Contains(out, "\x1b[") {
			t.Errorf("%v: expected ANSI escape in output, got %q", lvl, out)
		}
		if !strings.Contains(out, "colored") {
			t.Errorf("%v: message missing from %q", lvl, out)
		}
		if !strings.HasSuffix(out, "\n") {
			t.Errorf("%v: missing trailing newline in %q", lvl, out)
		}
	}
}

func TestConsoleFormatter_NoColorWins(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(ConsoleConfig{Writer: &buf, ForceColor: true, NoColor: true})

	result, _ := f.Format(&core.Entry{Time: fixedTime, Level: core.InfoLevel, Logger: "main", Message: "plain"})
	if strings.Contains(string(result), "\x1b[") {
		t.Errorf("expected no ANSI escapes, got %q", result)
	}
}

func TestConsoleFormatter_MultilineNotPadded(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(ConsoleConfig{Writer: &buf})

	result, _ := f.Format(&core.Entry{Time: fixedTime, Level: core.InfoLevel, Logger: "main", Message: "first line\nx"})
	if !strings.HasSuffix(string(result), "first line\nx\n") {
		t.Errorf("multi-line message was altered: %q", result)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.InfoLevel,
		Logger:  "main",
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !bytes.HasSuffix(result, []byte("}\n")) {
		t.Errorf("expected one object terminated by newline, got %q", result)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "INFO" {
		t.Errorf("Expected level 'INFO', got: %v", data["level"])
	}
	if data["message"] != "test message" {
		t.Errorf("Expected message 'test message', got: %v", data["message"])
	}
	if data["logger"] != "main" {
		t.Errorf("Expected logger 'main', got: %v", data["logger"])
	}
	if data["time"] != "2026-10-16T09:30:00.123Z" {
		t.Errorf("Expected RFC3339Nano time, got: %v", data["time"])
	}
}

func TestJSONFormatter_Levels(t *testing.T) {
	f := NewJSONFormatter(Config{})

	for _, lvl := range core.Levels() {
		result, err := f.Format(&core.Entry{Time: fixedTime, Level: lvl, Message: "m"})
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		var data map[string]interface{}
		if err := json.Unmarshal(result, &data); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if data["level"] != lvl.String() {
			t.Errorf("level = %v, want %v", data["level"], lvl)
		}
	}
}

func TestJSONFormatter_WithFields(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Fields: []core.Field{
			{Key: "str", Type: core.StringType, Str: "value"},
			{Key: "int", Type: core.IntType, Int64: 42},
			{Key: "bool", Type: core.BoolType, Int64: 1},
			{Key: "execution_time", Type: core.Float64Type, Float64: 0.25},
			{Key: "elapsed", Type: core.DurationType, Int64: int64(1500 * time.Millisecond)},
			{Key: "error", Type: core.ErrorType, Str: "quote \" and\nnewline"},
			{Key: "tags", Type: core.AnyType, Any: []string{"a", "b"}},
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["str"] != "value" {
		t.Errorf("Expected str='value', got: %v", data["str"])
	}
	if data["int"] != float64(42) { // JSON numbers are float64
		t.Errorf("Expected int=42, got: %v", data["int"])
	}
	if data["bool"] != true {
		t.Errorf("Expected bool=true, got: %v", data["bool"])
	}
	if data["execution_time"] != 0.25 {
		t.Errorf("Expected execution_time=0.25, got: %v", data["execution_time"])
	}
	if data["elapsed"] != 1.5 {
		t.Errorf("Expected elapsed=1.5 seconds, got: %v", data["elapsed"])
	}
	if data["error"] != "quote \" and\nnewline" {
		t.Errorf("Expected escaped error string to round-trip, got: %v", data["error"])
	}
	tags, ok := data["tags"].([]interface{})
	if !ok || len(tags) != 2 {
		t.Errorf("Expected tags array, got: %v", data["tags"])
	}
}

func TestJSONFormatter_ReservedKeyCollision(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    fixedTime,
		Level:   core.ErrorLevel,
		Logger:  "app",
		Message: "disk full",
		Caller:  core.CallerInfo{File: "/src/app/main.go", ShortFile: "main.go", Line: 7, Defined: true},
	}
	for _, key := range []string{"time", "level", "logger", "message", "caller"} {
		entry.Fields = append(entry.Fields, core.Field{Key: key, Type: core.StringType, Str: "extra-" + key})
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, key := range []string{"time", "level", "logger", "message", "caller"} {
		if n := strings.Count(string(result), `"`+key+`":`); n != 1 {
			t.Errorf("key %q written %d times in %s", key, n, result)
		}
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if data["level"] != "ERROR" || data["message"] != "disk full" || data["logger"] != "app" {
		t.Errorf("entry keys overwritten: %v", data)
	}
	if data["caller"] != "app/main.go:7" {
		t.Errorf("caller = %v", data["caller"])
	}
	for _, key := range []string{"time", "level", "logger", "message", "caller"} {
		if got := data[ReservedKeyPrefix+key]; got != "extra-"+key {
			t.Errorf("%s%s = %v, want %q", ReservedKeyPrefix, key, got, "extra-"+key)
		}
	}
}

func TestJSONFormatter_WithCaller(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeCaller: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["caller"] != "to/file.go:123" {
		t.Errorf("Expected caller='to/file.go:123', got: %v", data["caller"])
	}
}

func TestJSONFormatter_CallerOmittedByDefault(t *testing.T) {
	f := NewJSONFormatter(Config{})

	result, _ := f.Format(&core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller:  core.CallerInfo{File: "/a/b.go", Line: 1, Defined: true},
	})
	if strings.Contains(string(result), `"caller"`) {
		t.Errorf("caller should be omitted, got %s", result)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Logger:  "bench",
		Message: "test message",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Logger:  "bench",
		Message: "test message",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
