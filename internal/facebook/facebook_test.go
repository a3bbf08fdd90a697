package facebook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorPermission(t *testing.T) {
	err := error(&APIError{
		StatusCode: 400,
		Code:       100,
		Message:    "Object with ID '123' does not exist, cannot be loaded due to missing permissions",
	})
	assert.True(t, errors.Is(err, ErrPermission))

	other := error(&APIError{StatusCode: 500, Message: "An unexpected error has occurred"})
	assert.False(t, errors.Is(other, ErrPermission))
	assert.Contains(t, other.Error(), "status 500")
}
