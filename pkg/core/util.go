package core

import "math"

// Clamp restricts x to [minVal, maxVal]. NaN clamps to minVal.
func Clamp(x, minVal, maxVal float64) float64 {
	if math.IsNaN(x) || x < minVal {
		return minVal
	}
	if x > maxVal {
		return maxVal
	}
	return x
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
