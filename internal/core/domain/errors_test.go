package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestIsPermanentEventError(t *testing.T) {
	assert.True(t, domain.IsPermanentEventError(fmt.Errorf("%w: missing key", domain.ErrInvalidEvent)))
	assert.True(t, domain.IsPermanentEventError(fmt.Errorf("%w: key a.csv", domain.ErrSizeMismatch)))
	assert.False(t, domain.IsPermanentEventError(errors.New("The specified key does not exist.")))
	assert.False(t, domain.IsPermanentEventError(nil))
}
