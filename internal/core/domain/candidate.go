package domain

import (
	"fmt"
	"io"
)

// FileSource is the raw handle of a file chosen for upload
type FileSource interface {
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// CandidateStatus represents the status of an upload candidate
type CandidateStatus string

const (
	CandidateStatusPending   CandidateStatus = "pending"
	CandidateStatusUploading CandidateStatus = "uploading"
	CandidateStatusSuccess   CandidateStatus = "success"
	CandidateStatusError     CandidateStatus = "error"
)

// IsTerminal reports whether no further transition can happen
func (s CandidateStatus) IsTerminal() bool {
	return s == CandidateStatusSuccess || s == CandidateStatusError
}

// CanTransitionTo reports whether s may move to next.
// Pending -> Uploading -> {Success | Error} is the only reachable path.
func (s CandidateStatus) CanTransitionTo(next CandidateStatus) bool {
	switch s {
	case CandidateStatusPending:
		return next == CandidateStatusUploading
	case CandidateStatusUploading:
		return next == CandidateStatusSuccess || next == CandidateStatusError
	default:
		return false
	}
}

// UploadCandidate is one file accepted for upload, tracked through its statuses
type UploadCandidate struct {
	Source          FileSource
	DisplayName     string
	SizeBytes       int64
	ProgressPercent int
	Status          CandidateStatus
	Key             string
	Err             error
}

// NewUploadCandidate creates a pending candidate for src
func NewUploadCandidate(src FileSource) *UploadCandidate {
	return &UploadCandidate{
		Source:      src,
		DisplayName: src.Name(),
		SizeBytes:   src.Size(),
		Status:      CandidateStatusPending,
	}
}

// Transition moves the candidate to next, refusing anything outside the allowed path
func (c *UploadCandidate) Transition(next CandidateStatus) error {
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, next)
	}
	c.Status = next
	if next == CandidateStatusSuccess {
		c.ProgressPercent = 100
	}
	return nil
}

// SetProgress records percent, ignoring values lower than the current one.
// It returns true when the stored value changed.
func (c *UploadCandidate) SetProgress(percent int) bool {
	if percent > 100 {
		percent = 100
	}
	if percent <= c.ProgressPercent {
		return false
	}
	c.ProgressPercent = percent
	return true
}

// ProgressPercent computes floor(sent*100/total), clamped to [0,100]
func ProgressPercent(sent, total int64) int {
	if total <= 0 || sent <= 0 {
		return 0
	}
	if sent >= total {
		return 100
	}
	return int(sent * 100 / total)
}

// RejectReason is why a file was kept out of the working set
type RejectReason string

const (
	RejectReasonInvalidType RejectReason = "invalid type"
	RejectReasonTooLarge    RejectReason = "too large"
)

// Rejection lists the reasons a single file was rejected
type Rejection struct {
	Name    string
	Reasons []RejectReason
}
