package main

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"
)

// FeedResolution is the outcome of reconciling the remote visitor-log feed
// against the bundled safelist. Exactly one source wins; the two are never
// merged.
type FeedResolution struct {
	Data []Testimonial
	Live bool
}

// FeedReconciler fetches the remote testimonial collection and decides
// which source to render. It never persists its choice.
type FeedReconciler struct {
	client *http.Client
	url    string
}

func NewFeedReconciler(url string) *FeedReconciler {
	return &FeedReconciler{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
	}
}

// FetchAndResolve returns the remote collection with Live=true when the
// fetch succeeds with at least one entry. Transport failure, a non-2xx
// response, a malformed body and an empty result all fall back to the
// safelist with Live=false. Repeated calls against unchanged remote state
// return equivalent results.
func (r *FeedReconciler) FetchAndResolve(ctx context.Context, safelist []Testimonial) FeedResolution {
	archive := FeedResolution{Data: safelist, Live: false}
	if r.url == "" {
		return archive
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return archive
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("Feed sync failed, serving archive: %v", err)
		return archive
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Feed sync got status %d, serving archive", resp.StatusCode)
		return archive
	}

	var remote []Testimonial
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		log.Printf("Feed sync returned malformed payload, serving archive: %v", err)
		return archive
	}
	if len(remote) == 0 {
		return archive
	}
	return FeedResolution{Data: remote, Live: true}
}

// marqueeSecondsPerCycle matches the carousel pacing: at least twenty
// seconds per full pass, slower with more cards.
func marqueeSecondsPerCycle(count int) float64 {
	return math.Max(20, float64(count)*10)
}

// marqueeOffset is the carousel position at a point in time, independent of
// any rendering timer. The offset always stays within one item-set width:
// (-itemWidth*count, 0].
func marqueeOffset(elapsed time.Duration, itemWidth float64, count int) float64 {
	if count <= 0 || itemWidth <= 0 {
		return 0
	}
	setWidth := itemWidth * float64(count)
	velocity := setWidth / marqueeSecondsPerCycle(count)
	travelled := velocity * elapsed.Seconds()
	return -math.Mod(travelled, setWidth)
}
