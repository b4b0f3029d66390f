// Package geom provides the length, rectangle, and direction values
// shared by the container tree and the layout engine.
package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit a [Length] amount is expressed in.
type Unit int32

const (
	// Pixels is an absolute pixel count.
	Pixels Unit = iota

	// Percent is a percentage of the parent's extent on the relevant axis.
	Percent

	// ViewportWidthPercent is a percentage of a viewport width.
	// [Length.ToPixels] resolves it against whatever reference extent
	// the caller passes, exactly like [Percent]; it does not pick the
	// monitor's width by itself.
	ViewportWidthPercent

	// ViewportHeightPercent is a percentage of a viewport height.
	// [Length.ToPixels] resolves it against whatever reference extent
	// the caller passes, exactly like [Percent]; it does not pick the
	// monitor's height by itself.
	ViewportHeightPercent
)

func (u Unit) String() string {
	switch u {
	case Pixels:
		return "px"
	case Percent:
		return "%"
	case ViewportWidthPercent:
		return "vw"
	case ViewportHeightPercent:
		return "vh"
	default:
		return "unknown"
	}
}

// Length is an amount paired with the unit it is expressed in.
type Length struct {
	Amount float64
	Unit   Unit
}

// Px returns a [Length] of the given pixel amount.
func Px(amount float64) Length { return Length{Amount: amount, Unit: Pixels} }

// Pct returns a [Length] that is a percentage of the parent's extent.
func Pct(amount float64) Length { return Length{Amount: amount, Unit: Percent} }

// ToPixels resolves the length to an integer pixel count given the
// reference extent it is relative to (the parent's extent for
// [Percent], the monitor's width or height for the viewport units).
func (l Length) ToPixels(reference int) int {
	switch l.Unit {
	case Pixels:
		return int(l.Amount)
	case Percent, ViewportWidthPercent, ViewportHeightPercent:
		return int(l.Amount / 100 * float64(reference))
	default:
		return int(l.Amount)
	}
}

// ParseLength parses a single length token such as "5px", "10%",
// "50vw", or "50vh". It fails on any other suffix or a non-numeric
// amount.
func ParseLength(token string) (Length, error) {
	suffixes := []struct {
		suffix string
		unit   Unit
	}{
		{"px", Pixels},
		{"vw", ViewportWidthPercent},
		{"vh", ViewportHeightPercent},
		{"%", Percent},
	}
	for _, s := range suffixes {
		if strings.HasSuffix(token, s.suffix) {
			amount, err := strconv.ParseFloat(strings.TrimSuffix(token, s.suffix), 64)
			if err != nil {
				return Length{}, fmt.Errorf("invalid length %q: %w", token, err)
			}
			return Length{Amount: amount, Unit: s.unit}, nil
		}
	}
	return Length{}, fmt.Errorf("invalid length %q: unrecognized unit", token)
}

func (l Length) String() string {
	if l.Unit == Pixels {
		return fmt.Sprintf("%gpx", l.Amount)
	}
	return fmt.Sprintf("%g%s", l.Amount, l.Unit)
}
