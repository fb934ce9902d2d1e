package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	five := 5.0
	three := 3.0
	reviews := []Review{
		{Neighborhood: "Midtown", CuisineType: "Italian", Rating: &five, ReviewLength: 100, IsLocalGuide: true},
		{Neighborhood: "Midtown", CuisineType: "Pizza", Rating: &three, ReviewLength: 50, OwnerResponse: "thanks"},
		{Neighborhood: "East Harlem", CuisineType: "Italian", ReviewLength: 30},
	}

	sum := Summarize(reviews)
	require.Equal(t, 3, sum.TotalReviews)
	require.Equal(t, 2, sum.ByNeighborhood["Midtown"])
	require.Equal(t, 1, sum.ByNeighborhood["East Harlem"])
	require.Equal(t, 2, sum.ByCuisine["Italian"])
	require.Equal(t, 4.0, sum.AverageRating) // unrated reviews stay out of the mean
	require.Equal(t, 60.0, sum.AverageLength)
	require.Equal(t, 1, sum.OwnerResponses)
	require.Equal(t, 1, sum.LocalGuideReviews)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	require.Equal(t, 0, sum.TotalReviews)
	require.Equal(t, 0.0, sum.AverageRating)
	require.Equal(t, 0.0, sum.AverageLength)
}
