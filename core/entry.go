package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry represents a log entry with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Logger  string
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Logger = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// Field returns the last field with the given key. Later fields shadow
// earlier ones, matching how the JSON sink's output is read back.
func (e *Entry) Field(key string) (Field, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i], true
		}
	}
	return Field{}, false
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
