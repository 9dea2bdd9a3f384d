package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	// Early stop from the consumer.
	var got []int
	for val := range seq {
		got = append(got, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)

	assert.Empty(slices.Collect(IterSeqConcat[int]()))
}

func TestIterSeqFilter(t *testing.T) {
	assert := assert.New(t)

	odd := func(val int) bool { return val%2 == 1 }

	assert.Equal([]int{1, 3, 5}, slices.Collect(IterSeqFilter(slices.Values([]int{1, 2, 3, 4, 5}), odd)))
	assert.Empty(slices.Collect(IterSeqFilter(slices.Values([]int{2, 4}), odd)))

	var got []int
	for val := range IterSeqFilter(slices.Values([]int{1, 3, 5}), odd) {
		got = append(got, val)
		break
	}
	assert.Equal([]int{1}, got)
}
