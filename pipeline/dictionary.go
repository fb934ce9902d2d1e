package pipeline

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type columnDoc struct {
	name string
	desc string
}

var columnDocs = []columnDoc{
	{"restaurant_name", "Restaurant name."},
	{"neighborhood", "Manhattan neighborhood the restaurant belongs to."},
	{"cuisine_type", "Cuisine type, when available."},
	{"place_url", "Google Maps URL of the place."},
	{"reviewer_name", "Display name of the review author."},
	{"rating", "Numeric rating from 1 to 5."},
	{"review_text", "Free-form review text."},
	{"review_text_translated", "Translated text, when provided."},
	{"review_length", "Review text length in characters."},
	{"published_date", "Publish date string as reported by the source."},
	{"published_timestamp", "Unix timestamp (seconds or milliseconds)."},
	{"likes_count", "Number of likes on the review."},
	{"reviewer_total_reviews", "Total reviews written by the author."},
	{"is_local_guide", "Whether the author is a Local Guide."},
	{"owner_response", "Owner response, when one exists."},
	{"review_id", "Unique review id, when one exists."},
	{"review_url", "Direct URL to the review."},
	{"review_datetime_utc", "UTC datetime derived from the timestamp."},
	{"review_date", "Derived date (YYYY-MM-DD)."},
	{"review_year", "Derived review year."},
	{"review_month", "Derived review month."},
	{"neighborhood_norm", "Trimmed neighborhood."},
	{"neighborhood_canon", "Neighborhood mapped onto the canonical taxonomy."},
}

// WriteDataDictionary renders a markdown description of every output column
// with a real example value pulled from the cleaned rows.
func WriteDataDictionary(rows []CleanedReview, path string) error {
	var b strings.Builder
	b.WriteString("# Data Dictionary — Manhattan Reviews\n\n")
	b.WriteString("Collected and derived columns:\n\n")
	for _, col := range columnDocs {
		b.WriteString(fmt.Sprintf("- **%s**: %s", col.name, col.desc))
		if example := firstExample(rows, col.name); example != "" {
			b.WriteString(fmt.Sprintf("\n  _Example_: %s", example))
		}
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func firstExample(rows []CleanedReview, column string) string {
	for _, row := range rows {
		if v := columnValue(row, column); v != "" {
			return v
		}
	}
	return ""
}

func columnValue(r CleanedReview, column string) string {
	switch column {
	case "restaurant_name":
		return r.RestaurantName
	case "neighborhood":
		return r.Neighborhood
	case "cuisine_type":
		return r.CuisineType
	case "place_url":
		return r.PlaceURL
	case "reviewer_name":
		return r.ReviewerName
	case "rating":
		if r.Rating != nil {
			return strconv.FormatFloat(*r.Rating, 'f', -1, 64)
		}
	case "review_text":
		return r.ReviewText
	case "review_text_translated":
		return r.ReviewTextTranslated
	case "review_length":
		if r.ReviewLength > 0 {
			return strconv.Itoa(r.ReviewLength)
		}
	case "published_date":
		return r.PublishedDate
	case "published_timestamp":
		if r.PublishedTimestamp != nil {
			return strconv.FormatInt(*r.PublishedTimestamp, 10)
		}
	case "likes_count":
		if r.LikesCount > 0 {
			return strconv.FormatInt(r.LikesCount, 10)
		}
	case "reviewer_total_reviews":
		if r.ReviewerTotalReviews > 0 {
			return strconv.FormatInt(r.ReviewerTotalReviews, 10)
		}
	case "is_local_guide":
		return strconv.FormatBool(r.IsLocalGuide)
	case "owner_response":
		return r.OwnerResponse
	case "review_id":
		return r.ReviewID
	case "review_url":
		return r.ReviewURL
	case "review_datetime_utc":
		return r.ReviewDatetimeUTC
	case "review_date":
		return r.ReviewDate
	case "review_year":
		if r.ReviewYear != nil {
			return strconv.Itoa(*r.ReviewYear)
		}
	case "review_month":
		if r.ReviewMonth != nil {
			return strconv.Itoa(*r.ReviewMonth)
		}
	case "neighborhood_norm":
		return r.NeighborhoodNorm
	case "neighborhood_canon":
		return r.NeighborhoodCanon
	}
	return ""
}
