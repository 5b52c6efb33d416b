package uploadform

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// AcceptDrop replaces the working set with the files that pass the client checks
// and reports every rejected file with all of its reasons.
func (f *uploadForm) AcceptDrop(files []domain.FileSource) ([]domain.Rejection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return nil, domain.ErrUploadInProgress
	}

	var rejections []domain.Rejection
	candidates := make([]*domain.UploadCandidate, 0, len(files))
	for _, src := range files {
		if reasons := rejectReasons(src); len(reasons) > 0 {
			rejections = append(rejections, domain.Rejection{Name: src.Name(), Reasons: reasons})
			continue
		}
		candidates = append(candidates, domain.NewUploadCandidate(src))
	}

	f.candidates = candidates
	f.message = rejectionMessage(rejections)

	if len(rejections) > 0 {
		f.logger.Warn("files rejected", "rejected", len(rejections), "accepted", len(candidates))
	}
	return rejections, nil
}

func rejectReasons(src domain.FileSource) []domain.RejectReason {
	var reasons []domain.RejectReason
	if !domain.HasAllowedSuffix(src.Name()) {
		reasons = append(reasons, domain.RejectReasonInvalidType)
	}
	if src.Size() > domain.MaxClientFileSize {
		reasons = append(reasons, domain.RejectReasonTooLarge)
	}
	return reasons
}

// rejectionMessage is empty when nothing was rejected
func rejectionMessage(rejections []domain.Rejection) string {
	if len(rejections) == 0 {
		return ""
	}

	names := lo.Map(rejections, func(r domain.Rejection, _ int) string {
		reasons := lo.Map(r.Reasons, func(reason domain.RejectReason, _ int) string {
			return string(reason)
		})
		return fmt.Sprintf("%s (%s)", r.Name, strings.Join(reasons, ", "))
	})
	allowed := lo.Map(domain.AllowedExtensions, func(ext string, _ int) string {
		return strings.ToUpper(strings.TrimPrefix(ext, "."))
	})

	return fmt.Sprintf("Some files were rejected: %s. Allowed: %s (max %d MB each).",
		strings.Join(names, ", "),
		strings.Join(allowed, ", "),
		domain.MaxClientFileSize/(1024*1024),
	)
}
