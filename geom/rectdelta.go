package geom

import (
	"fmt"
	"strings"
)

// RectDelta is a resolved, pixel-valued per-side offset, as produced
// by resolving a [LengthDelta] against a reference extent.
type RectDelta struct {
	Left, Top, Right, Bottom int
}

// LengthDelta is four [Length] values, one per side, parsed from the
// standard CSS box shorthand. Unlike [RectDelta], its values are not
// yet resolved to pixels.
type LengthDelta struct {
	Left, Top, Right, Bottom Length
}

// NewLengthDelta returns the delta with the given per-side lengths.
func NewLengthDelta(left, top, right, bottom Length) LengthDelta {
	return LengthDelta{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Uniform returns a [LengthDelta] with the same length on all four sides.
func Uniform(l Length) LengthDelta { return NewLengthDelta(l, l, l, l) }

// ParseLengthDelta parses a 1-, 2-, 3-, or 4-token whitespace-separated
// shorthand following the standard CSS box rule:
//
//	1 token  -> applies to all sides
//	2 tokens -> top/bottom, then left/right
//	3 tokens -> top, left/right, bottom
//	4 tokens -> top, right, bottom, left
//
// Any other token count is a parse error.
func ParseLengthDelta(shorthand string) (LengthDelta, error) {
	tokens := strings.Fields(shorthand)
	values := make([]Length, 0, len(tokens))
	for _, tok := range tokens {
		l, err := ParseLength(tok)
		if err != nil {
			return LengthDelta{}, err
		}
		values = append(values, l)
	}

	switch len(values) {
	case 1:
		return Uniform(values[0]), nil
	case 2:
		topBottom, leftRight := values[0], values[1]
		return NewLengthDelta(leftRight, topBottom, leftRight, topBottom), nil
	case 3:
		top, leftRight, bottom := values[0], values[1], values[2]
		return NewLengthDelta(leftRight, top, leftRight, bottom), nil
	case 4:
		top, right, bottom, left := values[0], values[1], values[2], values[3]
		return NewLengthDelta(left, top, right, bottom), nil
	default:
		return LengthDelta{}, fmt.Errorf("invalid rect-delta shorthand %q: expected 1-4 tokens, got %d", shorthand, len(values))
	}
}

// String renders the canonical 4-token form, so that
// ParseLengthDelta(d.String()) is the identity for any d.
func (d LengthDelta) String() string {
	return fmt.Sprintf("%s %s %s %s", d.Top, d.Right, d.Bottom, d.Left)
}

// Resolve resolves the left/right sides against a width
// reference and the top/bottom sides against a height reference.
func (d LengthDelta) Resolve(widthReference, heightReference int) RectDelta {
	return RectDelta{
		Left:   d.Left.ToPixels(widthReference),
		Top:    d.Top.ToPixels(heightReference),
		Right:  d.Right.ToPixels(widthReference),
		Bottom: d.Bottom.ToPixels(heightReference),
	}
}
