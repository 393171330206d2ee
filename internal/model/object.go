package model

import "time"

// ObjectEntry is the read-only projection of one stored object, as reported
// by the backend through listing or head queries. The gateway never mutates
// it, only republishes it to callers.
type ObjectEntry struct {
	FileKey      string    `json:"fileKey"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType,omitempty"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"lastModified"`
}
