package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCounts(t *testing.T) {
	s := Summary{Results: []Result{
		{PostID: "1"},
		{PostID: "2", Err: errors.New("bad timestamp")},
		{PostID: "3", PreviousImports: 2},
		{PostID: "4", PreviousImports: 1, Err: errors.New("bad timestamp")},
	}}
	assert.Equal(t, 2, s.Written())
	assert.Equal(t, 2, s.Failed())
	assert.Equal(t, 1, s.Reimported())

	assert.Zero(t, Summary{}.Written())
}
