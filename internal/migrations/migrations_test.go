package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOrdered(t *testing.T) {
	all := All()
	assert.Len(t, all, 2)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Version, all[i].Version)
	}
}
