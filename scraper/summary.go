package scraper

// Summary aggregates a collected batch for the closing log lines.
type Summary struct {
	TotalReviews      int
	ByNeighborhood    map[string]int
	ByCuisine         map[string]int
	AverageRating     float64
	AverageLength     float64
	OwnerResponses    int
	LocalGuideReviews int
}

func Summarize(reviews []Review) Summary {
	sum := Summary{
		TotalReviews:   len(reviews),
		ByNeighborhood: map[string]int{},
		ByCuisine:      map[string]int{},
	}

	ratingTotal := 0.0
	rated := 0
	lengthTotal := 0
	for _, r := range reviews {
		sum.ByNeighborhood[r.Neighborhood]++
		sum.ByCuisine[r.CuisineType]++
		if r.Rating != nil {
			ratingTotal += *r.Rating
			rated++
		}
		lengthTotal += r.ReviewLength
		if r.OwnerResponse != "" {
			sum.OwnerResponses++
		}
		if r.IsLocalGuide {
			sum.LocalGuideReviews++
		}
	}
	if rated > 0 {
		sum.AverageRating = ratingTotal / float64(rated)
	}
	if len(reviews) > 0 {
		sum.AverageLength = float64(lengthTotal) / float64(len(reviews))
	}
	return sum
}
