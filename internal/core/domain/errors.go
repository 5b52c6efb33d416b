package domain

import "errors"

// ErrNoFileUploaded is an error thrown when the request carries no file or an empty one
var ErrNoFileUploaded = errors.New("no file uploaded")

// ErrInvalidFileType is an error thrown when file extension is not allowed
var ErrInvalidFileType = errors.New("invalid file type")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrStorageWrite is an error thrown when the object store did not acknowledge the write
var ErrStorageWrite = errors.New("storage write failed")

// ErrUploadInProgress is an error thrown when a batch is started while another one runs
var ErrUploadInProgress = errors.New("upload already in progress")

// ErrInvalidTransition is an error thrown when a candidate status change is not allowed
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidEvent is an error thrown when a message cannot be decoded into an upload event
var ErrInvalidEvent = errors.New("invalid upload event")

// ErrSizeMismatch is an error thrown when the stored object size differs from the upload event
var ErrSizeMismatch = errors.New("size mismatch")

// IsPermanentEventError reports whether redelivering the message can never succeed
func IsPermanentEventError(err error) bool {
	return errors.Is(err, ErrInvalidEvent) || errors.Is(err, ErrSizeMismatch)
}
