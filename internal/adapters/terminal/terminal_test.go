package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sk9212k/opaltech-aws/internal/adapters/terminal"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestProgressView(t *testing.T) {
	// Arrange
	out := &bytes.Buffer{}
	view := terminal.NewProgressView(out)
	candidates := []domain.UploadCandidate{
		{DisplayName: "a.csv", Status: domain.CandidateStatusPending},
		{DisplayName: "b.xml", Status: domain.CandidateStatusPending},
	}
	view.Track(candidates)

	// Act
	view.OnCandidateChanged(0, domain.UploadCandidate{DisplayName: "a.csv", Status: domain.CandidateStatusUploading, ProgressPercent: 40})
	view.OnCandidateChanged(0, domain.UploadCandidate{DisplayName: "a.csv", Status: domain.CandidateStatusSuccess, ProgressPercent: 100})
	view.OnCandidateChanged(1, domain.UploadCandidate{DisplayName: "b.xml", Status: domain.CandidateStatusUploading, ProgressPercent: 10})
	view.OnCandidateChanged(1, domain.UploadCandidate{DisplayName: "b.xml", Status: domain.CandidateStatusError, ProgressPercent: 10})
	view.OnCandidateChanged(7, domain.UploadCandidate{DisplayName: "unknown.csv", Status: domain.CandidateStatusUploading})
	view.OnFinished([]domain.UploadCandidate{
		{DisplayName: "a.csv", Status: domain.CandidateStatusSuccess, Key: "a.csv", ProgressPercent: 100},
		{DisplayName: "b.xml", Status: domain.CandidateStatusError, Err: errors.New("upload failed with status 500")},
	})

	// Assert
	output := out.String()
	assert.Contains(t, output, "Results:")
	assert.Contains(t, output, "a.csv -> a.csv")
	assert.Contains(t, output, "b.xml: upload failed with status 500")
}

func TestPrintRejections(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		out := &bytes.Buffer{}

		terminal.PrintRejections(out, "Some files were rejected: a.exe (invalid type).", []domain.Rejection{
			{Name: "a.exe", Reasons: []domain.RejectReason{domain.RejectReasonInvalidType}},
		})

		assert.Contains(t, out.String(), "Some files were rejected: a.exe (invalid type).")
		assert.Contains(t, out.String(), "a.exe")
		assert.Contains(t, out.String(), "[invalid type]")
	})

	t.Run("nothing rejected", func(t *testing.T) {
		out := &bytes.Buffer{}

		terminal.PrintRejections(out, "", nil)

		assert.Empty(t, out.String())
	})
}

func TestStatusLabel(t *testing.T) {
	assert.Contains(t, terminal.StatusLabel(domain.CandidateStatusSuccess), "success")
	assert.Contains(t, terminal.StatusLabel(domain.CandidateStatusError), "error")
	assert.Contains(t, terminal.StatusLabel(domain.CandidateStatusUploading), "uploading")
	assert.Contains(t, terminal.StatusLabel(domain.CandidateStatusPending), "pending")
}
