package util

import "github.com/asecurityteam/rolling"

func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// GetWindowMax returns the largest value currently held by the window
func GetWindowMax(window *rolling.PointPolicy) float64 {
	return window.Reduce(rolling.Max)
}

// GetWindowValues returns the raw values of the window in bucket order
func GetWindowValues(window *rolling.PointPolicy) []float64 {
	var result []float64
	window.Reduce(func(w rolling.Window) float64 {
		for _, bucket := range w {
			result = append(result, bucket...)
		}
		return 0
	})
	return result
}
