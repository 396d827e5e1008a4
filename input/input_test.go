package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapture(t *testing.T) {
	s := Capture([]Key{"w", "l"}, []Key{"`"})

	assert.True(t, s.Pressed("w"))
	assert.True(t, s.Pressed("l"))
	assert.False(t, s.Pressed("s"))
	assert.True(t, s.JustPressed("`"))
	assert.False(t, s.JustPressed("w"))
}

func TestEmptySnapshot(t *testing.T) {
	s := Capture(nil, nil)

	assert.False(t, s.Pressed("w"))
	assert.False(t, s.JustPressed("`"))
}
