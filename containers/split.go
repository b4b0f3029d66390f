package containers

import "cogentcore.org/wm/geom"

// Split is an internal tiling node: it has a tiling direction for
// its own children and a size-percent share of its parent's extent
// (spec §3.1).
type Split struct {
	Base

	tilingDirection geom.TilingDirection
	sizePercent     float64
}

// NewSplit constructs a split container with the given tiling
// direction and initial size percent.
func NewSplit(tilingDirection geom.TilingDirection, sizePercent float64) *Split {
	return &Split{
		Base:            newBase(KindSplit),
		tilingDirection: tilingDirection,
		sizePercent:     sizePercent,
	}
}

// TilingDirection implements [DirectionContainer].
func (s *Split) TilingDirection() geom.TilingDirection { return s.tilingDirection }

// SetTilingDirection implements [DirectionContainer].
func (s *Split) SetTilingDirection(d geom.TilingDirection) { s.tilingDirection = d }

// SizePercent implements [Tiling].
func (s *Split) SizePercent() float64 { return s.sizePercent }

// SetSizePercent implements [Tiling].
func (s *Split) SetSizePercent(p float64) { s.sizePercent = p }
