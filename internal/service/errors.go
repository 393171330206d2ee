package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"
)

var (
	// ErrInvalidRequest marks failures caused by caller-supplied input
	// violating a precondition (missing org code, oversized filename).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrStorageFailed marks any backend or I/O failure during
	// put/get/head/delete/list/presign, or a zip-writing failure.
	ErrStorageFailed = errors.New("storage operation failed")

	// ErrIDRequired and ErrNotFound are sample board validation errors.
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("sample not found")
)

// logFailure emits one JSON line per failed storage operation, with enough
// context to trace the request back to its object key.
func logFailure(op, key string, err error) {
	entry := map[string]any{
		"ts":        time.Now().Format(time.RFC3339Nano),
		"level":     "error",
		"component": "storage",
		"operation": op,
		"key":       key,
		"error":     err.Error(),
	}
	if b, jsonErr := json.Marshal(entry); jsonErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
