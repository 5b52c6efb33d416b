package domain_test

import (
	"errors"
	"testing"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateStatus_CanTransitionTo(t *testing.T) {
	all := []domain.CandidateStatus{
		domain.CandidateStatusPending,
		domain.CandidateStatusUploading,
		domain.CandidateStatusSuccess,
		domain.CandidateStatusError,
	}
	allowed := map[domain.CandidateStatus][]domain.CandidateStatus{
		domain.CandidateStatusPending:   {domain.CandidateStatusUploading},
		domain.CandidateStatusUploading: {domain.CandidateStatusSuccess, domain.CandidateStatusError},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, ok := range allowed[from] {
				if ok == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestUploadCandidate_Transition(t *testing.T) {
	t.Run("success forces full progress", func(t *testing.T) {
		c := &domain.UploadCandidate{Status: domain.CandidateStatusPending}

		require.NoError(t, c.Transition(domain.CandidateStatusUploading))
		c.SetProgress(40)
		require.NoError(t, c.Transition(domain.CandidateStatusSuccess))

		assert.Equal(t, 100, c.ProgressPercent)
		assert.True(t, c.Status.IsTerminal())
	})

	t.Run("error keeps last progress", func(t *testing.T) {
		c := &domain.UploadCandidate{Status: domain.CandidateStatusPending}

		require.NoError(t, c.Transition(domain.CandidateStatusUploading))
		c.SetProgress(40)
		require.NoError(t, c.Transition(domain.CandidateStatusError))

		assert.Equal(t, 40, c.ProgressPercent)
	})

	t.Run("pending cannot jump to success", func(t *testing.T) {
		c := &domain.UploadCandidate{Status: domain.CandidateStatusPending}

		err := c.Transition(domain.CandidateStatusSuccess)

		assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
		assert.Equal(t, domain.CandidateStatusPending, c.Status)
	})
}

func TestUploadCandidate_SetProgress(t *testing.T) {
	c := &domain.UploadCandidate{}

	assert.True(t, c.SetProgress(30))
	assert.False(t, c.SetProgress(10))
	assert.Equal(t, 30, c.ProgressPercent)
	assert.True(t, c.SetProgress(250))
	assert.Equal(t, 100, c.ProgressPercent)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, domain.ProgressPercent(0, 10))
	assert.Equal(t, 0, domain.ProgressPercent(5, 0))
	assert.Equal(t, 33, domain.ProgressPercent(1, 3))
	assert.Equal(t, 99, domain.ProgressPercent(999, 1000))
	assert.Equal(t, 100, domain.ProgressPercent(1000, 1000))
	assert.Equal(t, 100, domain.ProgressPercent(2000, 1000))
}

func TestHasAllowedSuffix(t *testing.T) {
	assert.True(t, domain.HasAllowedSuffix("data.XML"))
	assert.True(t, domain.HasAllowedSuffix("orders.edi"))
	assert.True(t, domain.HasAllowedSuffix("archive.tar.json"))
	assert.False(t, domain.HasAllowedSuffix("malware.exe"))
	assert.False(t, domain.HasAllowedSuffix("csv"))
}

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, domain.HasAllowedExtension("report.CSV"))
	assert.False(t, domain.HasAllowedExtension("report.csv.exe"))
	assert.False(t, domain.HasAllowedExtension("noext"))
	assert.Equal(t, ".xml, .csv, .json, .edi", domain.AllowedExtensionsList())
}
