package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratingsOf(values ...int) []Rating {
	res := make([]Rating, 0, len(values))
	for _, v := range values {
		res = append(res, Rating{Value: RatingValue(v)})
	}
	return res
}

func TestComputeAggregate(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		average float64
		display string
	}{
		{name: "empty", values: nil, average: 0, display: "0.0"},
		{name: "whole average", values: []int{3, 4, 5}, average: 4.0, display: "4.0"},
		{name: "half", values: []int{1, 2}, average: 1.5, display: "1.5"},
		{name: "single", values: []int{3}, average: 3.0, display: "3.0"},
		{name: "rounds down", values: []int{1, 1, 2}, average: 1.3, display: "1.3"},
		{name: "rounds up", values: []int{2, 3, 3}, average: 2.7, display: "2.7"},
		{name: "tie rounds away from zero", values: []int{2, 2, 2, 3}, average: 2.3, display: "2.3"},
		{name: "tie near binary edge", values: append(ratingsValues(17, 1), 2, 2, 2), average: 1.2, display: "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAggregate(ratingsOf(tt.values...))
			assert.Equal(t, len(tt.values), got.Count)
			assert.Equal(t, tt.average, got.Average)
			assert.Equal(t, tt.display, got.String())
		})
	}
}

func ratingsValues(n, v int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = v
	}
	return res
}

func TestComputeAggregateIsPure(t *testing.T) {
	ratings := ratingsOf(5, 4, 4)
	assert.Equal(t, ComputeAggregate(ratings), ComputeAggregate(ratings))
}

func TestRatingValueValid(t *testing.T) {
	assert.False(t, RatingValue(0).Valid())
	assert.True(t, RatingValue(1).Valid())
	assert.True(t, RatingValue(5).Valid())
	assert.False(t, RatingValue(6).Valid())
}

func TestItemKey(t *testing.T) {
	k := ItemKey{Type: ItemTypeProject, ID: "dev-1"}
	assert.Equal(t, "project_dev-1", k.String())
	assert.True(t, k.Valid())
	assert.False(t, ItemKey{Type: "blog", ID: "x"}.Valid())
	assert.False(t, ItemKey{Type: ItemTypeAchievement}.Valid())
}
