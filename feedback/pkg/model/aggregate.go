package model

import "strconv"

// Aggregate is the average and count of an item's ratings. It is derived
// from the rating records on every read and never stored.
type Aggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ComputeAggregate returns the mean rating rounded to one decimal place,
// half away from zero.
func ComputeAggregate(ratings []Rating) Aggregate {
	if len(ratings) == 0 {
		return Aggregate{}
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r.Value)
	}
	n := int64(len(ratings))
	// Rounded tenths in integer arithmetic: round(10*sum/n).
	tenths := (20*sum + n) / (2 * n)
	return Aggregate{Average: float64(tenths) / 10, Count: len(ratings)}
}

// String renders the average with exactly one decimal.
func (a Aggregate) String() string {
	return strconv.FormatFloat(a.Average, 'f', 1, 64)
}
