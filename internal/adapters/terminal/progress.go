package terminal

import (
	"io"
	"sync"

	"github.com/TwiN/go-color"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

// ProgressView renders one progress bar per upload candidate
type ProgressView struct {
	out      io.Writer
	progress *mpb.Progress

	mu   sync.Mutex
	bars map[int]*mpb.Bar

	// statuses has its own lock, decorators read it from the render goroutine
	statusMu sync.RWMutex
	statuses map[int]domain.CandidateStatus
}

func NewProgressView(out io.Writer) *ProgressView {
	return &ProgressView{
		out:      out,
		progress: mpb.New(mpb.WithOutput(out), mpb.WithWidth(60)),
		bars:     make(map[int]*mpb.Bar),
		statuses: make(map[int]domain.CandidateStatus),
	}
}

// Track adds a bar for every candidate, must be called before the batch starts
func (v *ProgressView) Track(candidates []domain.UploadCandidate) {
	for i, c := range candidates {
		index := i
		name := c.DisplayName
		v.setStatus(index, c.Status)
		bar := v.progress.New(100,
			mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding("-").Rbound("]"),
			mpb.PrependDecorators(
				decor.Name(name, decor.WC{W: len(name) + 2, C: decor.DidentRight}),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WCSyncSpace),
				decor.Any(func(decor.Statistics) string {
					return " " + StatusLabel(v.status(index))
				}),
			),
		)

		v.mu.Lock()
		v.bars[index] = bar
		v.mu.Unlock()
	}
}

func (v *ProgressView) status(index int) domain.CandidateStatus {
	v.statusMu.RLock()
	defer v.statusMu.RUnlock()
	return v.statuses[index]
}

func (v *ProgressView) setStatus(index int, status domain.CandidateStatus) {
	v.statusMu.Lock()
	defer v.statusMu.Unlock()
	v.statuses[index] = status
}

func (v *ProgressView) OnCandidateChanged(index int, c domain.UploadCandidate) {
	v.mu.Lock()
	bar, ok := v.bars[index]
	v.mu.Unlock()
	if !ok {
		return
	}

	v.setStatus(index, c.Status)
	switch c.Status {
	case domain.CandidateStatusError:
		bar.Abort(false)
	default:
		bar.SetCurrent(int64(c.ProgressPercent))
	}
}

// OnFinished waits for the bars to flush and prints the per file results
func (v *ProgressView) OnFinished(candidates []domain.UploadCandidate) {
	v.mu.Lock()
	bars := make([]*mpb.Bar, 0, len(v.bars))
	for _, bar := range v.bars {
		bars = append(bars, bar)
	}
	v.mu.Unlock()

	for _, bar := range bars {
		if !bar.Completed() {
			bar.Abort(false)
		}
	}

	v.progress.Wait()
	PrintResults(v.out, candidates)
}

// StatusLabel is the coloured status shown next to a file
func StatusLabel(status domain.CandidateStatus) string {
	switch status {
	case domain.CandidateStatusSuccess:
		return color.InGreen("success")
	case domain.CandidateStatusError:
		return color.InRed("error")
	case domain.CandidateStatusUploading:
		return color.InCyan("uploading")
	default:
		return color.Ize(color.Gray, "pending")
	}
}
