package apify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Run statuses reported by the actor platform.
const (
	StatusReady     = "READY"
	StatusRunning   = "RUNNING"
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusAborted   = "ABORTED"
	StatusTimedOut  = "TIMED-OUT"
)

// RunInput is the input document for the reviews actor.
type RunInput struct {
	StartURLs    []StartURL `json:"startUrls"`
	MaxReviews   int        `json:"maxReviews"`
	ReviewsSort  string     `json:"reviewsSort"`
	Language     string     `json:"language"`
	PersonalData bool       `json:"personalData"`
	MaxImages    int        `json:"maxImages"`
}

type StartURL struct {
	URL string `json:"url"`
}

// Run is the actor run resource, trimmed to the fields the collector needs.
type Run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

func (me Run) Finished() bool {
	switch me.Status {
	case StatusSucceeded, StatusFailed, StatusAborted, StatusTimedOut:
		return true
	}
	return false
}

type runEnvelope struct {
	Data  Run       `json:"data"`
	Error *APIError `json:"error"`
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// Client talks to one account on the actor platform. One client per token;
// rotation across accounts lives in the scraper, not here.
type Client struct {
	http  *resty.Client
	token string
}

func NewClient(baseURL, token string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetQueryParam("token", token).
		SetHeader("Content-Type", "application/json")
	return &Client{http: httpClient, token: token}
}

func (me *Client) Token() string {
	return me.token
}

// StartRun launches an actor run and returns it without waiting.
func (me *Client) StartRun(ctx context.Context, actorID string, input RunInput) (Run, error) {
	var envelope runEnvelope
	resp, err := me.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&envelope).
		SetError(&envelope).
		Post("/v2/acts/" + actorID + "/runs")
	if err != nil {
		return Run{}, fmt.Errorf("start run: %w", err)
	}
	if resp.IsError() {
		return Run{}, apiError(resp, envelope.Error)
	}
	return envelope.Data, nil
}

func (me *Client) GetRun(ctx context.Context, runID string) (Run, error) {
	var envelope runEnvelope
	resp, err := me.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetError(&envelope).
		Get("/v2/actor-runs/" + runID)
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	if resp.IsError() {
		return Run{}, apiError(resp, envelope.Error)
	}
	return envelope.Data, nil
}

// WaitForRun polls the run until it reaches a terminal status or ctx ends.
func (me *Client) WaitForRun(ctx context.Context, runID string, pollInterval time.Duration) (Run, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		run, err := me.GetRun(ctx, runID)
		if err != nil {
			return Run{}, err
		}
		if run.Finished() {
			return run, nil
		}
		select {
		case <-ctx.Done():
			return Run{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// DatasetItems fetches the cleaned records of a finished run.
func (me *Client) DatasetItems(ctx context.Context, datasetID string) ([]DatasetItem, error) {
	var items []DatasetItem
	var envelope errorEnvelope
	resp, err := me.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"clean":  "true",
			"format": "json",
		}).
		SetResult(&items).
		SetError(&envelope).
		Get("/v2/datasets/" + datasetID + "/items")
	if err != nil {
		return nil, fmt.Errorf("dataset items: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp, envelope.Error)
	}
	return items, nil
}

// RunActor starts a run, blocks until it finishes and returns its dataset.
func (me *Client) RunActor(ctx context.Context, actorID string, input RunInput, pollInterval time.Duration) ([]DatasetItem, error) {
	run, err := me.StartRun(ctx, actorID, input)
	if err != nil {
		return nil, err
	}
	if run.ID == "" {
		return nil, &APIError{Type: "invalid-response", Message: "actor run without an id"}
	}
	run, err = me.WaitForRun(ctx, run.ID, pollInterval)
	if err != nil {
		return nil, err
	}
	if run.Status != StatusSucceeded {
		return nil, &APIError{
			Type:    "run-" + strings.ToLower(run.Status),
			Message: "actor run finished with status " + run.Status,
		}
	}
	if run.DefaultDatasetID == "" {
		return nil, &APIError{Type: "invalid-response", Message: "actor run without a default dataset"}
	}
	return me.DatasetItems(ctx, run.DefaultDatasetID)
}

func apiError(resp *resty.Response, apiErr *APIError) error {
	if apiErr == nil || apiErr.Message == "" {
		apiErr = &APIError{Type: "unknown", Message: resp.Status()}
	}
	apiErr.StatusCode = resp.StatusCode()
	return apiErr
}
