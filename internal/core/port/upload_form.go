package port

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// ProgressFunc receives the number of request bytes sent so far and the request total
type ProgressFunc func(sent, total int64)

// UploadReceipt is what the server answered for a stored file
type UploadReceipt struct {
	Message  string
	FileName string
	Key      string
}

// UploadTransport sends one file to the upload endpoint
type UploadTransport interface {
	Upload(ctx context.Context, src domain.FileSource, onProgress ProgressFunc) (*UploadReceipt, error)
}

// FormObserver is notified of every candidate change made by the upload form
type FormObserver interface {
	OnCandidateChanged(index int, candidate domain.UploadCandidate)
	OnFinished(candidates []domain.UploadCandidate)
}

// UploadForm is the client side working set of files and its sequential send loop
type UploadForm interface {
	AcceptDrop(files []domain.FileSource) ([]domain.Rejection, error)
	StartUpload(ctx context.Context) error
	CanUpload() bool
	Candidates() []domain.UploadCandidate
	Message() string
}
