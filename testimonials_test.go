package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchAndResolveLiveFeed(t *testing.T) {
	server := feedServer(t, http.StatusOK, `[
		{"id":"abc","name":"REMOTE_ONE","message":"great","rating":5,"color":"bg-brutal-lime"},
		{"id":"def","name":"REMOTE_TWO","message":"fast","rating":4,"color":"bg-brutal-yellow"}
	]`)

	res := NewFeedReconciler(server.URL).FetchAndResolve(context.Background(), TestimonialSafelist)
	require.True(t, res.Live)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "REMOTE_ONE", res.Data[0].Name)
}

func TestFetchAndResolveFallsBackToSafelist(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"not found", http.StatusNotFound, ""},
		{"empty result", http.StatusOK, "[]"},
		{"malformed payload", http.StatusOK, "{not json"},
		{"object instead of array", http.StatusOK, `{"error":"nope"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := feedServer(t, tc.status, tc.body)
			res := NewFeedReconciler(server.URL).FetchAndResolve(context.Background(), TestimonialSafelist)
			assert.False(t, res.Live)
			assert.Equal(t, TestimonialSafelist, res.Data)
		})
	}
}

func TestFetchAndResolveTransportFailure(t *testing.T) {
	server := feedServer(t, http.StatusOK, "[]")
	server.Close() // connection refused from here on

	res := NewFeedReconciler(server.URL).FetchAndResolve(context.Background(), TestimonialSafelist)
	assert.False(t, res.Live)
	assert.Equal(t, TestimonialSafelist, res.Data)
}

func TestFetchAndResolveNoEndpointConfigured(t *testing.T) {
	res := NewFeedReconciler("").FetchAndResolve(context.Background(), TestimonialSafelist)
	assert.False(t, res.Live)
	assert.Equal(t, TestimonialSafelist, res.Data)
}

func TestFetchAndResolveIsIdempotent(t *testing.T) {
	server := feedServer(t, http.StatusOK, `[{"id":"abc","name":"R","message":"m","rating":5,"color":"bg-brutal-lime"}]`)
	reconciler := NewFeedReconciler(server.URL)

	first := reconciler.FetchAndResolve(context.Background(), TestimonialSafelist)
	second := reconciler.FetchAndResolve(context.Background(), TestimonialSafelist)
	assert.Equal(t, first, second)
}

func TestFetchAndResolveHonorsCancelledContext(t *testing.T) {
	server := feedServer(t, http.StatusOK, `[{"id":"abc","name":"R","message":"m","rating":5,"color":"bg-brutal-lime"}]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewFeedReconciler(server.URL).FetchAndResolve(ctx, TestimonialSafelist)
	assert.False(t, res.Live)
	assert.Equal(t, TestimonialSafelist, res.Data)
}

func TestVisibleTestimonialsFilter(t *testing.T) {
	hidden := false
	items := []Testimonial{
		{ID: "a", Visible: boolPtr(true)},
		{ID: "b", Visible: &hidden},
		{ID: "c"}, // absent flag defaults to shown
	}
	shown := visibleTestimonials(items)
	require.Len(t, shown, 2)
	assert.Equal(t, "a", shown[0].ID)
	assert.Equal(t, "c", shown[1].ID)
}

func TestMarqueeOffsetStaysWithinOneSetWidth(t *testing.T) {
	const itemWidth = 440.0
	const count = 7
	setWidth := itemWidth * count

	for _, elapsed := range []time.Duration{
		0,
		3 * time.Second,
		45 * time.Second,
		10 * time.Minute,
		3 * time.Hour,
	} {
		offset := marqueeOffset(elapsed, itemWidth, count)
		assert.LessOrEqual(t, offset, 0.0, "elapsed %v", elapsed)
		assert.Greater(t, offset, -setWidth, "elapsed %v", elapsed)
	}
}

func TestMarqueeOffsetIsDeterministic(t *testing.T) {
	a := marqueeOffset(37*time.Second, 400, 5)
	b := marqueeOffset(37*time.Second, 400, 5)
	assert.Equal(t, a, b)
}

func TestMarqueeOffsetDegenerateInputs(t *testing.T) {
	assert.Zero(t, marqueeOffset(time.Minute, 400, 0))
	assert.Zero(t, marqueeOffset(time.Minute, 0, 5))
	assert.Zero(t, marqueeOffset(0, 400, 5))
}

func TestMarqueePacing(t *testing.T) {
	// short sets still take twenty seconds per cycle; long sets slow down
	assert.Equal(t, 20.0, marqueeSecondsPerCycle(1))
	assert.Equal(t, 20.0, marqueeSecondsPerCycle(2))
	assert.Equal(t, 70.0, marqueeSecondsPerCycle(7))
}
