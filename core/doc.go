// Package core defines the shared types used across apptemplate's logging
// layer.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs (the "extras" carried into JSON output).
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once every handler has
// consumed it. Handlers never retain an Entry past Handle.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
package core
