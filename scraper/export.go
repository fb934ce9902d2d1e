package scraper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"go-maps-review-scraper/utils"
)

// Exporter persists flattened reviews under a single output directory.
type Exporter struct {
	dir string
	log *zap.Logger
}

func NewExporter(dir string, log *zap.Logger) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Exporter{dir: dir, log: log}, nil
}

func (me *Exporter) Path(name string) string {
	return filepath.Join(me.dir, name)
}

// SaveCSV rewrites name with the full record set. The file is truncated
// every time so re-exporting the same slice stays byte identical.
func (me *Exporter) SaveCSV(reviews []Review, name string) error {
	if len(reviews) == 0 {
		me.log.Warn("no reviews to save", zap.String("file", name))
		return nil
	}
	file, err := os.Create(me.Path(name))
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()
	if err := gocsv.MarshalFile(&reviews, file); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	me.log.Info("saved reviews",
		zap.String("file", name),
		zap.Int("count", len(reviews)))
	return nil
}

// SaveJSON rewrites name with the full record set as an indented array.
func (me *Exporter) SaveJSON(reviews []Review, name string) error {
	if len(reviews) == 0 {
		me.log.Warn("no reviews to save", zap.String("file", name))
		return nil
	}
	if _, err := utils.WriteDataToFileAsJSON(reviews, me.Path(name)); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	me.log.Info("saved reviews",
		zap.String("file", name),
		zap.Int("count", len(reviews)))
	return nil
}
