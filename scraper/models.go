package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go-maps-review-scraper/services/apify"
)

// Restaurant is one descriptor from the rest_data input lists.
type Restaurant struct {
	URL          string `json:"url"`
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
	CuisineType  string `json:"cuisine_type"`
}

// Review is one flattened output record. Field order fixes the CSV header.
type Review struct {
	RestaurantName       string   `json:"restaurant_name" csv:"restaurant_name"`
	Neighborhood         string   `json:"neighborhood" csv:"neighborhood"`
	CuisineType          string   `json:"cuisine_type" csv:"cuisine_type"`
	PlaceURL             string   `json:"place_url" csv:"place_url"`
	ReviewerName         string   `json:"reviewer_name" csv:"reviewer_name"`
	Rating               *float64 `json:"rating" csv:"rating"`
	ReviewText           string   `json:"review_text" csv:"review_text"`
	ReviewTextTranslated string   `json:"review_text_translated" csv:"review_text_translated"`
	ReviewLength         int      `json:"review_length" csv:"review_length"`
	PublishedDate        string   `json:"published_date" csv:"published_date"`
	PublishedTimestamp   *int64   `json:"published_timestamp" csv:"published_timestamp"`
	LikesCount           int64    `json:"likes_count" csv:"likes_count"`
	ReviewerTotalReviews int64    `json:"reviewer_total_reviews" csv:"reviewer_total_reviews"`
	IsLocalGuide         bool     `json:"is_local_guide" csv:"is_local_guide"`
	OwnerResponse        string   `json:"owner_response" csv:"owner_response"`
	ReviewID             string   `json:"review_id" csv:"review_id"`
	ReviewURL            string   `json:"review_url" csv:"review_url"`
}

// DefaultRestaurantFiles are the per income bracket input lists.
var DefaultRestaurantFiles = []string{"high_income.json", "mid_income.json", "low_income.json"}

// LoadRestaurants reads every listed file under dir and concatenates the
// descriptors in file order.
func LoadRestaurants(dir string, files []string) ([]Restaurant, error) {
	var all []Restaurant
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read restaurant file: %w", err)
		}
		var batch []Restaurant
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		all = append(all, batch...)
	}
	return all, nil
}

// flattenItem maps a raw dataset record onto the output schema.
func flattenItem(item apify.DatasetItem, r Restaurant) Review {
	reviewer := item.Name
	if reviewer == "" {
		reviewer = "Anonymous"
	}
	cuisine := r.CuisineType
	if cuisine == "" {
		cuisine = "Unknown"
	}
	published := item.PublishedAtDate
	if published == "" {
		published = "Unknown"
	}
	return Review{
		RestaurantName:       r.Name,
		Neighborhood:         r.Neighborhood,
		CuisineType:          cuisine,
		PlaceURL:             r.URL,
		ReviewerName:         reviewer,
		Rating:               item.Stars,
		ReviewText:           item.Text,
		ReviewTextTranslated: item.TextTranslated,
		ReviewLength:         utf8.RuneCountInString(item.Text),
		PublishedDate:        published,
		PublishedTimestamp:   item.Timestamp(),
		LikesCount:           item.LikesCount,
		ReviewerTotalReviews: item.ReviewerNumberOfReviews,
		IsLocalGuide:         item.IsLocalGuide,
		OwnerResponse:        item.ResponseFromOwnerText,
		ReviewID:             item.ReviewID,
		ReviewURL:            item.ReviewURL,
	}
}
