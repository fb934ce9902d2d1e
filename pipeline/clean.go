package pipeline

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"go-maps-review-scraper/scraper"
)

// CanonMap folds neighborhood aliases onto the canonical taxonomy used by
// the downstream analysis.
var CanonMap = map[string]string{
	"UWS":          "Upper West Side",
	"UES":          "Upper East Side",
	"U.E.S":        "Upper East Side",
	"Midtown West": "Midtown",
	"Midtown East": "Midtown",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanedReview is a collected review plus the derived analysis columns.
type CleanedReview struct {
	scraper.Review
	ReviewDatetimeUTC string `json:"review_datetime_utc" csv:"review_datetime_utc"`
	ReviewDate        string `json:"review_date" csv:"review_date"`
	ReviewYear        *int   `json:"review_year" csv:"review_year"`
	ReviewMonth       *int   `json:"review_month" csv:"review_month"`
	NeighborhoodNorm  string `json:"neighborhood_norm" csv:"neighborhood_norm"`
	NeighborhoodCanon string `json:"neighborhood_canon" csv:"neighborhood_canon"`
}

// compositeKey hashes the fields that identify a review even when some are
// missing. Matches the dedup key of the collection side of the project.
func compositeKey(r scraper.Review) string {
	ts := ""
	if r.PublishedTimestamp != nil {
		ts = strconv.FormatInt(*r.PublishedTimestamp, 10)
	}
	parts := []string{r.ReviewID, r.RestaurantName, r.ReviewerName, r.ReviewText, ts}
	sum := md5.Sum([]byte(strings.Join(parts, "||")))
	return hex.EncodeToString(sum[:])
}

// timestampsInMillis decides the unit of published_timestamp: milliseconds
// when the majority of present values exceed 1e12, seconds otherwise.
func timestampsInMillis(reviews []scraper.Review) bool {
	present := 0
	large := 0
	for _, r := range reviews {
		if r.PublishedTimestamp == nil {
			continue
		}
		present++
		if *r.PublishedTimestamp > 1_000_000_000_000 {
			large++
		}
	}
	return present > 0 && large*2 > present
}

// Clean deduplicates by composite key (first occurrence wins), collapses
// review text whitespace, derives the UTC date columns and normalizes the
// neighborhood. Returns the cleaned rows and the number of duplicates
// removed.
func Clean(reviews []scraper.Review) ([]CleanedReview, int) {
	millis := timestampsInMillis(reviews)

	seen := map[string]bool{}
	cleaned := make([]CleanedReview, 0, len(reviews))
	removed := 0
	for _, r := range reviews {
		key := compositeKey(r)
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true

		r.ReviewText = whitespaceRe.ReplaceAllString(strings.TrimSpace(r.ReviewText), " ")

		row := CleanedReview{Review: r}
		if r.PublishedTimestamp != nil {
			var t time.Time
			if millis {
				t = time.UnixMilli(*r.PublishedTimestamp).UTC()
			} else {
				t = time.Unix(*r.PublishedTimestamp, 0).UTC()
			}
			row.ReviewDatetimeUTC = t.Format(time.RFC3339)
			row.ReviewDate = t.Format("2006-01-02")
			year := t.Year()
			month := int(t.Month())
			row.ReviewYear = &year
			row.ReviewMonth = &month
		}

		norm := strings.TrimSpace(r.Neighborhood)
		row.NeighborhoodNorm = norm
		if canon, ok := CanonMap[norm]; ok {
			row.NeighborhoodCanon = canon
		} else {
			row.NeighborhoodCanon = norm
		}

		cleaned = append(cleaned, row)
	}
	return cleaned, removed
}

// CleanFile reads a collected CSV, cleans it and writes the result. When
// dictPath is set a data dictionary markdown is written next to it.
func CleanFile(inPath, outPath, dictPath string, log *zap.Logger) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input csv: %w", err)
	}
	defer in.Close()

	var raw []scraper.Review
	if err := gocsv.UnmarshalFile(in, &raw); err != nil {
		return fmt.Errorf("parse input csv: %w", err)
	}

	cleaned, removed := Clean(raw)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output csv: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&cleaned, out); err != nil {
		return fmt.Errorf("write output csv: %w", err)
	}

	if dictPath != "" {
		if err := WriteDataDictionary(cleaned, dictPath); err != nil {
			return fmt.Errorf("write data dictionary: %w", err)
		}
		log.Info("data dictionary written", zap.String("file", dictPath))
	}

	log.Info("cleaning complete",
		zap.Int("raw_rows", len(raw)),
		zap.Int("duplicates_removed", removed),
		zap.Int("clean_rows", len(cleaned)))
	return nil
}
