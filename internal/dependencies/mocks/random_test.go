package mocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockRandomQueuesThenCounts(t *testing.T) {
	r := NewMockRandom()
	r.QueueString("111111")

	assert.Equal(t, "111111", r.String(6, "0123456789"))
	assert.Equal(t, "000001", r.String(6, "0123456789"))
	assert.Equal(t, "000002", r.String(6, "0123456789"))
}

func TestMockRandomShuffleKeepsOrder(t *testing.T) {
	r := NewMockRandom()
	values := []int{3, 1, 2}
	r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	assert.Equal(t, []int{3, 1, 2}, values)
	assert.Equal(t, 1, r.Shuffles())
}
