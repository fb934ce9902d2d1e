package scraper

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleReviews() []Review {
	rating := 4.5
	ts := int64(1700000000)
	return []Review{
		{
			RestaurantName:       "Trattoria Uno",
			Neighborhood:         "Upper East Side",
			CuisineType:          "Italian",
			PlaceURL:             "https://maps.example/place/1",
			ReviewerName:         "Ana",
			Rating:               &rating,
			ReviewText:           "great spot, would return",
			ReviewLength:         24,
			PublishedDate:        "2023-11-14T22:13:20.000Z",
			PublishedTimestamp:   &ts,
			LikesCount:           2,
			ReviewerTotalReviews: 10,
			IsLocalGuide:         true,
			OwnerResponse:        "thank you!",
			ReviewID:             "r1",
			ReviewURL:            "https://maps.example/review/r1",
		},
		{
			RestaurantName: "Harlem Grill",
			Neighborhood:   "East Harlem",
			CuisineType:    "Unknown",
			PlaceURL:       "https://maps.example/place/2",
			ReviewerName:   "Anonymous",
			ReviewText:     "it was ok <b>really</b>",
			ReviewLength:   23,
			PublishedDate:  "Unknown",
			ReviewID:       "r2",
		},
	}
}

func TestSaveCSVHeaderAndRoundTrip(t *testing.T) {
	exporter, err := NewExporter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	reviews := sampleReviews()
	require.NoError(t, exporter.SaveCSV(reviews, "reviews.csv"))

	raw, err := os.ReadFile(exporter.Path("reviews.csv"))
	require.NoError(t, err)
	header := strings.SplitN(string(raw), "\n", 2)[0]
	require.Equal(t,
		"restaurant_name,neighborhood,cuisine_type,place_url,reviewer_name,"+
			"rating,review_text,review_text_translated,review_length,"+
			"published_date,published_timestamp,likes_count,"+
			"reviewer_total_reviews,is_local_guide,owner_response,review_id,review_url",
		strings.TrimRight(header, "\r"))

	back := readCSV(t, exporter.Path("reviews.csv"))
	require.Len(t, back, 2)
	require.Equal(t, reviews[0].RestaurantName, back[0].RestaurantName)
	require.NotNil(t, back[0].Rating)
	require.Equal(t, *reviews[0].Rating, *back[0].Rating)
	require.Nil(t, back[1].Rating)
	require.True(t, back[0].IsLocalGuide)
}

func TestExportIsByteIdenticalOnReexport(t *testing.T) {
	exporter, err := NewExporter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	reviews := sampleReviews()
	require.NoError(t, exporter.SaveCSV(reviews, "a.csv"))
	require.NoError(t, exporter.SaveCSV(reviews, "b.csv"))
	require.NoError(t, exporter.SaveJSON(reviews, "a.json"))
	require.NoError(t, exporter.SaveJSON(reviews, "b.json"))

	csvA, err := os.ReadFile(exporter.Path("a.csv"))
	require.NoError(t, err)
	csvB, err := os.ReadFile(exporter.Path("b.csv"))
	require.NoError(t, err)
	require.Equal(t, csvA, csvB)

	jsonA, err := os.ReadFile(exporter.Path("a.json"))
	require.NoError(t, err)
	jsonB, err := os.ReadFile(exporter.Path("b.json"))
	require.NoError(t, err)
	require.Equal(t, jsonA, jsonB)

	// overwriting the same path leaves identical bytes too
	require.NoError(t, exporter.SaveCSV(reviews, "a.csv"))
	again, err := os.ReadFile(exporter.Path("a.csv"))
	require.NoError(t, err)
	require.Equal(t, csvA, again)
}

func TestSaveJSONKeepsHTMLUnescaped(t *testing.T) {
	exporter, err := NewExporter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, exporter.SaveJSON(sampleReviews(), "reviews.json"))
	raw, err := os.ReadFile(exporter.Path("reviews.json"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "<b>really</b>")
}

func TestSaveSkipsEmptySlice(t *testing.T) {
	exporter, err := NewExporter(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, exporter.SaveCSV(nil, "empty.csv"))
	_, err = os.Stat(exporter.Path("empty.csv"))
	require.True(t, os.IsNotExist(err))
}
