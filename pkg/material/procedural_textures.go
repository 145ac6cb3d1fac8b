package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCheckerboardTexture creates a width x height texture of alternating squares
// checkSize pixels wide
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	checkSize = max(1, checkSize)
	return newGeneratedTexture(width, height, func(x, y int) core.Vec3 {
		if (x/checkSize+y/checkSize)%2 == 0 {
			return color1
		}
		return color2
	})
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V to green, so the bottom-left corner is black.
func NewUVDebugTexture(width, height int) *ImageTexture {
	return newGeneratedTexture(width, height, func(x, y int) core.Vec3 {
		u := float64(x) / float64(max(1, width-1))
		v := 1.0 - float64(y)/float64(max(1, height-1))
		return core.NewVec3(u, v, 0.0)
	})
}

// NewGradientTexture creates a vertical gradient from top (V=1) to bottom (V=0)
func NewGradientTexture(width, height int, top, bottom core.Vec3) *ImageTexture {
	return newGeneratedTexture(width, height, func(x, y int) core.Vec3 {
		return top.Lerp(bottom, float64(y)/float64(max(1, height-1)))
	})
}

func newGeneratedTexture(width, height int, pixel func(x, y int) core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = pixel(x, y)
		}
	}
	return NewImageTexture(width, height, pixels)
}
