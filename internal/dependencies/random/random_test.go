package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUsesAlphabet(t *testing.T) {
	r := New()
	s := r.String(6, "0123456789")
	assert.Len(t, s, 6)
	for _, ch := range s {
		assert.True(t, strings.ContainsRune("0123456789", ch))
	}
	assert.Empty(t, r.String(0, "abc"))
	assert.Empty(t, r.String(3, ""))
}

func TestIntnBounds(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	for range 100 {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

func TestShufflePreservesElements(t *testing.T) {
	r := New()
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, values)
}
