package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// RecordDistance derives the accrued delta from this read, so it has to take
// the row lock; a plain SELECT under READ COMMITTED lets two readings accrue
// the same delta.
func TestSelectBikeForUpdateLocksRow(t *testing.T) {
	assert.True(t, strings.HasSuffix(selectBikeForUpdate, "WHERE bike_id = $1 FOR UPDATE"), selectBikeForUpdate)
}
