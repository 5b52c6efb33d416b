package domain

import "time"

// IncomingFile is a fully buffered file received by the upload endpoint
type IncomingFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// StoredObject represents an object acknowledged by the object store
type StoredObject struct {
	Key         string
	FileName    string
	ContentType string
	SizeBytes   int64
}

// KeyStrategy tells how a storage key is derived from the uploaded file name
type KeyStrategy string

const (
	// KeyStrategyOriginal uses the filename verbatim, same-named uploads overwrite each other
	KeyStrategyOriginal KeyStrategy = "original"
	// KeyStrategyUnique prefixes a sanitized filename with a time-ordered id
	KeyStrategyUnique KeyStrategy = "unique"
)

// UploadStoredEvent is published once an object was written
type UploadStoredEvent struct {
	Key         string    `json:"key"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StoredAt    time.Time `json:"stored_at"`
}

// ObjectInfo describes an object as reported by the object store
type ObjectInfo struct {
	Key         string
	SizeBytes   int64
	ContentType string
	ETag        string
}
