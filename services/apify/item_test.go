package apify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimestampNumericPublishAt(t *testing.T) {
	item := DatasetItem{PublishAt: json.RawMessage(`1700000000`)}
	ts := item.Timestamp()
	require.NotNil(t, ts)
	require.Equal(t, int64(1700000000), *ts)
}

func TestTimestampNumericStringPublishAt(t *testing.T) {
	item := DatasetItem{PublishAt: json.RawMessage(`"1700000000123"`)}
	ts := item.Timestamp()
	require.NotNil(t, ts)
	require.Equal(t, int64(1700000000123), *ts)
}

func TestTimestampDerivedFromPublishedAtDate(t *testing.T) {
	item := DatasetItem{
		PublishAt:       json.RawMessage(`"a month ago"`),
		PublishedAtDate: "2023-05-01T12:00:00.000Z",
	}
	ts := item.Timestamp()
	require.NotNil(t, ts)
	require.Equal(t, int64(1682942400), *ts)
}

func TestTimestampUnusable(t *testing.T) {
	item := DatasetItem{PublishAt: json.RawMessage(`"a month ago"`)}
	require.Nil(t, item.Timestamp())

	require.Nil(t, DatasetItem{}.Timestamp())
}

func TestDatasetItemDecoding(t *testing.T) {
	raw := `{
		"name": "Carla",
		"stars": 4,
		"text": "solid pasta",
		"textTranslated": "",
		"publishedAtDate": "2024-01-15T08:30:00.000Z",
		"publishAt": "a week ago",
		"likesCount": 3,
		"reviewerNumberOfReviews": 42,
		"isLocalGuide": true,
		"responseFromOwnerText": "thank you!",
		"reviewId": "abc123",
		"reviewUrl": "https://maps.example/review/abc123"
	}`
	var item DatasetItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	require.Equal(t, "Carla", item.Name)
	require.NotNil(t, item.Stars)
	require.Equal(t, 4.0, *item.Stars)
	require.True(t, item.IsLocalGuide)
	require.Equal(t, int64(42), item.ReviewerNumberOfReviews)

	ts := item.Timestamp()
	require.NotNil(t, ts)
	require.Equal(t, int64(1705307400), *ts)
}
