// Package rating derives a movie's displayed rating from its review scores.
package rating

import "math"

// Default is the rating of a movie without reviews.
const Default = 0.0

// Average returns the mean of scores rounded to one decimal place, or Default when there are none.
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return Default
	}

	var sum float64
	for _, score := range scores {
		sum += score
	}

	return Round(sum / float64(len(scores)))
}

// Round rounds to one decimal place, ties to even.
func Round(value float64) float64 {
	return math.RoundToEven(value*10) / 10 //nolint:mnd // one decimal place
}
