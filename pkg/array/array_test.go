package array_test

import (
	"testing"

	"github.com/ian-shakespeare/liblox/pkg/array"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	arr := []int{3, 5, 8, 13}

	assert.Equal(t, 2, array.Some(arr, func(n int) bool { return n%2 == 0 }))
	assert.Equal(t, -1, array.Some(arr, func(n int) bool { return n > 100 }))
	assert.Equal(t, -1, array.Some([]int{}, func(int) bool { return true }))
}

func TestContains(t *testing.T) {
	t.Parallel()

	assert.True(t, array.Contains([]byte{' ', '\t', '\r'}, '\t'))
	assert.False(t, array.Contains([]byte{' ', '\t', '\r'}, '\n'))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	kept := array.Filter([]string{"a", "", "b", ""}, func(s string) bool { return s != "" })
	assert.Equal(t, []string{"a", "b"}, kept)
	assert.Nil(t, array.Filter([]string{""}, func(s string) bool { return s != "" }))
}
