package scraper

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"go-maps-review-scraper/services/apify"
)

// ErrCreditsExhausted means every configured account hit its usage limit
// while serving a single job. The batch cannot make progress past it.
var ErrCreditsExhausted = errors.New("all accounts have exhausted their credits")

type Options struct {
	ActorID              string
	MaxRetries           int
	RetryDelay           time.Duration
	PollInterval         time.Duration
	RunTimeout           time.Duration
	ReviewsPerRestaurant int
	ReviewsSort          string
	SaveInterval         int
	DelayMin             time.Duration
	DelayMax             time.Duration
}

// MultiAccountScraper drives the hosted actor across many restaurants,
// one job at a time. The account index is sticky and only advances when
// the current token comes back credit-exhausted, wrapping after the last.
type MultiAccountScraper struct {
	clients  []*apify.Client
	current  int
	opts     Options
	reviews  []Review
	exporter *Exporter
	log      *zap.Logger
}

func NewMultiAccountScraper(clients []*apify.Client, exporter *Exporter, opts Options, log *zap.Logger) (*MultiAccountScraper, error) {
	if len(clients) == 0 {
		return nil, errors.New("at least one API token is required")
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.SaveInterval <= 0 {
		opts.SaveInterval = 5
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Second
	}
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = 10 * time.Minute
	}
	if opts.ReviewsPerRestaurant <= 0 {
		opts.ReviewsPerRestaurant = 50
	}
	if opts.ReviewsSort == "" {
		opts.ReviewsSort = "newest"
	}
	return &MultiAccountScraper{
		clients:  clients,
		opts:     opts,
		exporter: exporter,
		log:      log,
	}, nil
}

func (me *MultiAccountScraper) client() *apify.Client {
	return me.clients[me.current]
}

func (me *MultiAccountScraper) rotate() {
	me.current = (me.current + 1) % len(me.clients)
}

// Reviews returns everything collected so far.
func (me *MultiAccountScraper) Reviews() []Review {
	return me.reviews
}

// ScrapeRestaurant runs one actor job for r and returns the flattened
// records. A credit-exhausted response advances to the next account and the
// call is repeated; a full wrap without success aborts with
// ErrCreditsExhausted. Other failures are retried with a constant backoff
// up to MaxRetries attempts.
func (me *MultiAccountScraper) ScrapeRestaurant(ctx context.Context, r Restaurant) ([]Review, error) {
	input := apify.RunInput{
		StartURLs:    []apify.StartURL{{URL: r.URL}},
		MaxReviews:   me.opts.ReviewsPerRestaurant,
		ReviewsSort:  me.opts.ReviewsSort,
		Language:     "en",
		PersonalData: false,
		MaxImages:    0,
	}

	var items []apify.DatasetItem
	attempt := 0
	op := func() error {
		attempt++
		for rotations := 0; rotations < len(me.clients); rotations++ {
			me.log.Info("calling actor",
				zap.String("restaurant", r.Name),
				zap.Int("attempt", attempt),
				zap.Int("account", me.current+1))

			runCtx, cancel := context.WithTimeout(ctx, me.opts.RunTimeout)
			got, err := me.client().RunActor(runCtx, me.opts.ActorID, input, me.opts.PollInterval)
			cancel()
			if err == nil {
				items = got
				return nil
			}
			if !apify.IsCreditExhausted(err) {
				return err
			}
			me.rotate()
			me.log.Warn("account credits exhausted, rotating",
				zap.Int("next_account", me.current+1))
		}
		return backoff.Permanent(ErrCreditsExhausted)
	}

	wait := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(me.opts.RetryDelay),
			uint64(me.opts.MaxRetries-1)),
		ctx)
	if err := backoff.Retry(op, wait); err != nil {
		return nil, fmt.Errorf("scrape %s: %w", r.Name, err)
	}

	reviews := make([]Review, 0, len(items))
	for _, item := range items {
		reviews = append(reviews, flattenItem(item, r))
	}
	me.log.Info("extracted reviews",
		zap.String("restaurant", r.Name),
		zap.Int("count", len(reviews)))
	return reviews, nil
}

// Run processes every restaurant sequentially, writing a progress snapshot
// after each SaveInterval jobs. A per-job failure is counted and the batch
// moves on; credit exhaustion and context cancellation abort the batch and
// return what was collected so far.
func (me *MultiAccountScraper) Run(ctx context.Context, restaurants []Restaurant) ([]Review, error) {
	total := len(restaurants)
	me.log.Info("starting batch scrape",
		zap.Int("restaurants", total),
		zap.Int("accounts", len(me.clients)),
		zap.Int("target_reviews", total*me.opts.ReviewsPerRestaurant))

	successful := 0
	failed := 0
	for i, r := range restaurants {
		me.log.Info("processing restaurant",
			zap.Int("index", i+1),
			zap.Int("total", total),
			zap.String("name", r.Name),
			zap.String("neighborhood", r.Neighborhood))

		reviews, err := me.ScrapeRestaurant(ctx, r)
		if err != nil {
			if errors.Is(err, ErrCreditsExhausted) || ctx.Err() != nil {
				return me.reviews, err
			}
			failed++
			me.log.Warn("no reviews collected",
				zap.String("restaurant", r.Name),
				zap.Error(err))
		} else {
			successful++
			me.reviews = append(me.reviews, reviews...)
		}

		if (i+1)%me.opts.SaveInterval == 0 {
			name := fmt.Sprintf("reviews_progress_%d.csv", i+1)
			if err := me.exporter.SaveCSV(me.reviews, name); err != nil {
				return me.reviews, fmt.Errorf("write progress snapshot: %w", err)
			}
			me.log.Info("progress saved",
				zap.String("file", name),
				zap.Int("successful", successful),
				zap.Int("failed", failed))
		}

		if i < total-1 {
			if err := me.pause(ctx); err != nil {
				return me.reviews, err
			}
		}
	}

	me.log.Info("scraping complete",
		zap.Int("total_reviews", len(me.reviews)),
		zap.Int("successful", successful),
		zap.Int("failed", failed))
	return me.reviews, nil
}

// pause sleeps a random duration inside [DelayMin, DelayMax] between jobs.
func (me *MultiAccountScraper) pause(ctx context.Context) error {
	delay := me.opts.DelayMin
	if span := me.opts.DelayMax - me.opts.DelayMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	if delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
