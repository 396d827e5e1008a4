package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wvoliveira/pong/game"
)

func TestPrimitiveIndices(t *testing.T) {
	tests := []struct {
		name string
		p    game.Primitive
		n    int
		want []uint16
	}{
		{"too few vertices", game.Triangles, 2, nil},
		{"one triangle", game.Triangles, 3, []uint16{0, 1, 2}},
		{"two triangles", game.Triangles, 6, []uint16{0, 1, 2, 3, 4, 5}},
		{"triangles drop the tail", game.Triangles, 7, []uint16{0, 1, 2, 3, 4, 5}},
		{"strip quad", game.TriangleStrip, 4, []uint16{0, 1, 2, 1, 2, 3}},
		{"strip minimum", game.TriangleStrip, 3, []uint16{0, 1, 2}},
		{"fan", game.TriangleFan, 5, []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := primitiveIndices(tt.p, tt.n)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every index must address a real vertex; a bad index would panic inside
// DrawTriangles at runtime.
func TestPrimitiveIndicesInRange(t *testing.T) {
	for _, p := range []game.Primitive{game.Triangles, game.TriangleStrip, game.TriangleFan} {
		for n := 0; n < 30; n++ {
			for _, i := range primitiveIndices(p, n) {
				assert.Less(t, int(i), n)
			}
		}
	}
}
