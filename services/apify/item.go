package apify

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DatasetItem is one raw review record as the reviews actor emits it.
// publishAt has no fixed type on the wire, so it stays raw until Timestamp.
type DatasetItem struct {
	Name                    string          `json:"name"`
	Stars                   *float64        `json:"stars"`
	Text                    string          `json:"text"`
	TextTranslated          string          `json:"textTranslated"`
	PublishedAtDate         string          `json:"publishedAtDate"`
	PublishAt               json.RawMessage `json:"publishAt"`
	LikesCount              int64           `json:"likesCount"`
	ReviewerNumberOfReviews int64           `json:"reviewerNumberOfReviews"`
	IsLocalGuide            bool            `json:"isLocalGuide"`
	ResponseFromOwnerText   string          `json:"responseFromOwnerText"`
	ReviewID                string          `json:"reviewId"`
	ReviewURL               string          `json:"reviewUrl"`
}

// Timestamp returns the unix publish time. publishAt is used when it decodes
// as a number or a numeric string; otherwise the time is derived from
// publishedAtDate. Nil when neither field is usable.
func (me DatasetItem) Timestamp() *int64 {
	if len(me.PublishAt) > 0 {
		var num json.Number
		if err := json.Unmarshal(me.PublishAt, &num); err == nil {
			if v, err := num.Int64(); err == nil {
				return &v
			}
			if f, err := num.Float64(); err == nil {
				v := int64(f)
				return &v
			}
		}
		var s string
		if err := json.Unmarshal(me.PublishAt, &s); err == nil {
			if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				return &v
			}
		}
	}
	if me.PublishedAtDate != "" {
		if t, err := time.Parse(time.RFC3339, me.PublishedAtDate); err == nil {
			v := t.Unix()
			return &v
		}
	}
	return nil
}
