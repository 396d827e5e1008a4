package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	assert.Equal(t, Vec2{3, 5}, Vec2{1, 2}.Add(Vec2{2, 3}))
	assert.Equal(t, Vec2{2, -6}, Vec2{1, 2}.Mul(Vec2{2, -3}))
	assert.Equal(t, Vec2{2, 4}, Vec2{1, 2}.Scale(2))
}

func TestRectContains(t *testing.T) {
	r := RectAt(Vec2{10, 20}, 30, 40)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{25, 40}, true},
		{"top-left corner", Vec2{10, 20}, true},
		{"bottom-right corner", Vec2{40, 60}, true},
		{"on left edge", Vec2{10, 30}, true},
		{"left of rect", Vec2{9.9, 30}, false},
		{"below rect", Vec2{25, 60.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := RectAt(Vec2{10, 20}, 30, 40).Expand(5)

	assert.Equal(t, Rect{Min: Vec2{5, 15}, Max: Vec2{45, 65}}, r)
	assert.True(t, r.Contains(Vec2{5, 15}))
	assert.False(t, r.Contains(Vec2{4.9, 15}))
}
