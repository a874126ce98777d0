// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package incline derives the side incline of a bathtub from its measurements.
// The cross-section is modelled as a trapezoid with two symmetric slanted sides.
package incline

import "math"

// Degrees returns the angle between a slanted side and the vertical, in degrees.
// A zero height is the degenerate flat case and yields 0.
// For non-negative inputs the result is always in [0, 90).
func Degrees(topLength, bottomLength, height float64) float64 {
	if height == 0 {
		return 0
	}

	// Horizontal offset of one side.
	offset := math.Abs(topLength-bottomLength) / 2

	deg := math.Atan2(offset, height) * 180 / math.Pi

	// Atan2 reaches exactly 90 when offset dwarfs height.
	return math.Min(deg, maxDegrees)
}

// maxDegrees is the largest float64 below 90.
var maxDegrees = math.Nextafter(90, 0)

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
