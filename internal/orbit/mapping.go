package orbit

import "golang.org/x/exp/constraints"

// Logical orbit radii in the catalog span this domain; the renderer draws
// them between these percentages of the container's half-size.
const (
	DomainMin  = 1.2
	DomainMax  = 3.8
	PercentMin = 25.0
	PercentMax = 48.0
)

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
// Values outside the input range extrapolate; nothing is clamped.
// A zero-width input range maps everything to outMin.
func MapRange[T constraints.Float](v, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// MapRadius converts a logical orbit radius to a percentage radius.
func MapRadius(radius, domainMin, domainMax, outputMin, outputMax float64) float64 {
	return MapRange(radius, domainMin, domainMax, outputMin, outputMax)
}

// PercentRadius maps a catalog orbit radius onto the fixed percentage range.
func PercentRadius(radius float64) float64 {
	return MapRadius(radius, DomainMin, DomainMax, PercentMin, PercentMax)
}

// PixelRadius converts a catalog orbit radius to pixels for a square
// container of the given size.
func PixelRadius(radius, containerSize float64) float64 {
	return (containerSize / 2) * (PercentRadius(radius) / 100) * 2
}
