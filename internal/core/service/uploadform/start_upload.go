package uploadform

import (
	"context"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// StartUpload sends every pending candidate one after the other.
// A failed candidate does not stop the batch.
func (f *uploadForm) StartUpload(ctx context.Context) error {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return domain.ErrUploadInProgress
	}
	if len(f.candidates) == 0 {
		f.mu.Unlock()
		return nil
	}
	f.running = true
	f.message = ""
	batch := f.candidates
	f.mu.Unlock()

	f.logger.Info("upload batch started", "files", len(batch))
	for i, c := range batch {
		if c.Status != domain.CandidateStatusPending {
			continue
		}
		f.send(ctx, i, c)
	}

	f.mu.Lock()
	f.running = false
	f.message = msgUploadFinished
	finished := f.snapshot()
	f.mu.Unlock()

	f.logger.Info("upload batch finished", "files", len(finished))
	f.observer.OnFinished(finished)
	return nil
}

func (f *uploadForm) send(ctx context.Context, index int, c *domain.UploadCandidate) {
	f.update(index, c, func(c *domain.UploadCandidate) bool {
		return f.transition(c, domain.CandidateStatusUploading)
	})

	receipt, err := f.transport.Upload(ctx, c.Source, func(sent, total int64) {
		f.update(index, c, func(c *domain.UploadCandidate) bool {
			return c.SetProgress(domain.ProgressPercent(sent, total))
		})
	})
	if err != nil {
		f.logger.Warn("upload failed", "file_name", c.DisplayName, "error", err)
		f.update(index, c, func(c *domain.UploadCandidate) bool {
			c.Err = err
			return f.transition(c, domain.CandidateStatusError)
		})
		return
	}

	f.logger.Info("file uploaded", "file_name", c.DisplayName, "key", receipt.Key)
	f.update(index, c, func(c *domain.UploadCandidate) bool {
		c.Key = receipt.Key
		return f.transition(c, domain.CandidateStatusSuccess)
	})
}

// update applies fn under the lock and notifies the observer outside of it
func (f *uploadForm) update(index int, c *domain.UploadCandidate, fn func(c *domain.UploadCandidate) bool) {
	f.mu.Lock()
	changed := fn(c)
	current := *c
	f.mu.Unlock()

	if changed {
		f.observer.OnCandidateChanged(index, current)
	}
}

func (f *uploadForm) transition(c *domain.UploadCandidate, next domain.CandidateStatus) bool {
	if err := c.Transition(next); err != nil {
		f.logger.Error("candidate status not updated", "file_name", c.DisplayName, "error", err)
		return false
	}
	return true
}
