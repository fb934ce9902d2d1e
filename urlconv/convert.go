package urlconv

import (
	"errors"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// ErrNoPlaceURL means the redirect chain did not end on a maps place URL
// the actor can consume as a start URL.
var ErrNoPlaceURL = errors.New("redirect did not land on a maps place URL")

// Converter expands share-link shorthand (share.google/...) to full Google
// Maps place URLs by following the redirect chain.
type Converter struct {
	timeout time.Duration
	log     *zap.Logger
}

func NewConverter(timeout time.Duration, log *zap.Logger) *Converter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Converter{timeout: timeout, log: log}
}

// Convert visits shareURL and returns the URL the chain settles on.
func (me *Converter) Convert(shareURL string) (string, error) {
	c := colly.NewCollector()
	c.SetRequestTimeout(me.timeout)

	var finalURL string
	var visitErr error

	c.OnRequest(func(r *colly.Request) {
		me.log.Debug("visiting", zap.String("url", r.URL.String()))
	})
	c.OnResponse(func(r *colly.Response) {
		finalURL = r.Request.URL.String()
	})
	// some share links bounce through an interstitial meta refresh
	c.OnHTML(`meta[http-equiv="refresh"]`, func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if idx := strings.Index(strings.ToLower(content), "url="); idx >= 0 {
			e.Request.Visit(strings.TrimSpace(content[idx+4:]))
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
	})

	if err := c.Visit(shareURL); err != nil {
		return "", err
	}
	c.Wait()

	if visitErr != nil {
		return "", visitErr
	}
	if finalURL == "" {
		return "", ErrNoPlaceURL
	}
	me.log.Info("redirect chain complete",
		zap.String("share_url", shareURL),
		zap.String("final_url", finalURL))
	if !IsPlaceURL(finalURL) {
		return finalURL, ErrNoPlaceURL
	}
	return finalURL, nil
}

// IsPlaceURL reports whether url is usable as an actor start URL.
func IsPlaceURL(url string) bool {
	return strings.Contains(url, "/maps/place")
}
