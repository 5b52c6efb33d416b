package uploadform

import (
	"log/slog"
	"sync"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/sk9212k/opaltech-aws/internal/core/port"
)

const msgUploadFinished = "Upload process finished. Check statuses above."

type uploadForm struct {
	transport port.UploadTransport
	observer  port.FormObserver
	logger    *slog.Logger

	mu         sync.Mutex
	candidates []*domain.UploadCandidate
	message    string
	running    bool
}

// NewForm creates an empty upload form. observer may be nil.
func NewForm(transport port.UploadTransport, observer port.FormObserver, logger *slog.Logger) port.UploadForm {
	if observer == nil {
		observer = noopObserver{}
	}
	return &uploadForm{
		transport: transport,
		observer:  observer,
		logger:    logger,
	}
}

// CanUpload is false while the set is empty, a batch is running or nothing is left pending
func (f *uploadForm) CanUpload() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return false
	}
	for _, c := range f.candidates {
		if c.Status == domain.CandidateStatusPending {
			return true
		}
	}
	return false
}

// Candidates returns a copy of the working set in acceptance order
func (f *uploadForm) Candidates() []domain.UploadCandidate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

func (f *uploadForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// snapshot must be called with mu held
func (f *uploadForm) snapshot() []domain.UploadCandidate {
	out := make([]domain.UploadCandidate, len(f.candidates))
	for i, c := range f.candidates {
		out[i] = *c
	}
	return out
}

type noopObserver struct{}

func (noopObserver) OnCandidateChanged(int, domain.UploadCandidate) {}

func (noopObserver) OnFinished([]domain.UploadCandidate) {}
