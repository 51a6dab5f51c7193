package material

import (
	"math"

	"render-engine/geometry"
)

// Texture maps a surface UV and world position to a colour. Supported
// variants are a flat colour and a solid/checker procedural map; image
// sampling is out of scope for this renderer.
type Texture interface {
	Value(u, v float64, p geometry.Vector) geometry.Vector
}

// SolidColor is a flat-colour texture.
type SolidColor struct {
	Color geometry.Vector
}

func NewSolidColor(r, g, b float64) SolidColor {
	return SolidColor{Color: geometry.NewDirection(r, g, b)}
}

func (s SolidColor) Value(u, v float64, p geometry.Vector) geometry.Vector {
	return s.Color
}

// CheckerTexture alternates between two sub-textures based on the parity of
// floor(x/scale)+floor(y/scale)+floor(z/scale), a common procedural 3-D
// checker pattern.
type CheckerTexture struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

func NewCheckerTexture(scale float64, even, odd geometry.Vector) CheckerTexture {
	return CheckerTexture{
		InvScale: 1.0 / scale,
		Even:     SolidColor{Color: even},
		Odd:      SolidColor{Color: odd},
	}
}

func (c CheckerTexture) Value(u, v float64, p geometry.Vector) geometry.Vector {
	x := int64(math.Floor(p.X() * c.InvScale))
	y := int64(math.Floor(p.Y() * c.InvScale))
	z := int64(math.Floor(p.Z() * c.InvScale))
	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
