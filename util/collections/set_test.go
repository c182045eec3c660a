package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddContains(t *testing.T) {
	set := make(Set[int])
	assert.False(t, set.Contains(1))

	set.Add(1)
	set.Add(1)
	assert.True(t, set.Contains(1))
	assert.Len(t, set, 1)
}
