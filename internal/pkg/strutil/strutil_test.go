//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 0, ConvertToInt("abc"))
	assert.Equal(t, -3, ConvertToInt("-3"))
}

func TestConvertToBool(t *testing.T) {
	v, ok := ConvertToBool("true")
	assert.True(t, v)
	assert.True(t, ok)

	_, ok = ConvertToBool("maybe")
	assert.False(t, ok)
}
