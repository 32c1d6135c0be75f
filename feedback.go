package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// registerValidations adds the custom binding rules the feedback payloads
// use. Must run before the first request binds one of them.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		switch Section(fl.Field().String()) {
		case SectionHero, SectionWork, SectionStack, SectionLogs, SectionContact:
			return true
		}
		return false
	})
}

// ErrSubmission marks a feedback push that never reached the ingestion
// endpoint. The draft is preserved so a retry loses nothing.
var ErrSubmission = errors.New("submission failed")

var brutalColors = []string{
	"bg-brutal-lime",
	"bg-brutal-pink-neon",
	"bg-brutal-blue-electric",
	"bg-brutal-orange-hot",
	"bg-brutal-yellow",
	"bg-brutal-cyan-deep",
}

var randomRoles = []string{
	"SOFTWARE_ENGINEER",
	"PRODUCT_DESIGNER",
	"TECH_ARCHITECT",
	"CREATIVE_DIRECTOR",
	"FOUNDER @ STEALTH_STARTUP",
	"FULLSTACK_DEV",
	"UX_RESEARCHER",
	"DEVOPS_ENGINEER",
	"PRODUCT_MANAGER",
	"SYSTEM_ADMIN",
	"VISUAL_STRATEGIST",
	"FRONTEND_SPECIALIST",
	"CTO @ ALPHA_TECH",
	"OPEN_SOURCE_CONTRIBUTOR",
}

// FeedbackSubmission is what the widget posts. Rating is required and must
// land in [1,5]; the zero value (rating unset) is rejected by binding.
type FeedbackSubmission struct {
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Rating   int             `json:"rating" binding:"required,min=1,max=5"`
	Opinion  string          `json:"opinion" binding:"required"`
	Metadata SessionMetadata `json:"metadata"`
}

// visitorLogPayload is the wire shape the ingestion endpoint expects.
// Submissions land hidden; promotion into the rotation happens on the
// sheet, not here.
type visitorLogPayload struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	Rating             int    `json:"rating"`
	Opinion            string `json:"opinion"`
	OriginSection      string `json:"origin_section"`
	ProjectHistory     string `json:"project_history"`
	ShowInTestimonials bool   `json:"show_in_testimonials"`
}

// FeedbackAck is the typed result of a submission. The endpoint itself
// returns no useful body, so the ack carries what the UI needs to confirm.
type FeedbackAck struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

// FeedbackGateway forwards visitor feedback to the configured ingestion
// endpoint.
type FeedbackGateway struct {
	client *http.Client
	url    string
}

func NewFeedbackGateway(url string) *FeedbackGateway {
	return &FeedbackGateway{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
	}
}

// Submit normalizes the submission (anonymous identity fallback, uppercased
// or randomized role) and posts it. HTTP-level success is the only ack the
// transport offers; anything else is ErrSubmission.
func (g *FeedbackGateway) Submit(ctx context.Context, sub FeedbackSubmission) (FeedbackAck, error) {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		name = "ANONYMOUS_ENTITY"
	}
	role := strings.TrimSpace(sub.Role)
	if role == "" {
		role = randomRoles[rand.Intn(len(randomRoles))]
	} else {
		role = strings.ToUpper(role)
	}

	payload := visitorLogPayload{
		ID:                 uuid.NewString(),
		Name:               name,
		Role:               role,
		Rating:             sub.Rating,
		Opinion:            sub.Opinion,
		OriginSection:      string(sub.Metadata.CurrentSection),
		ProjectHistory:     strings.Join(sub.Metadata.ProjectHistory, ", "),
		ShowInTestimonials: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return FeedbackAck{}, fmt.Errorf("%w: encode payload: %v", ErrSubmission, err)
	}

	if g.url == "" {
		return FeedbackAck{}, fmt.Errorf("%w: no ingestion endpoint configured", ErrSubmission)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return FeedbackAck{}, fmt.Errorf("%w: %v", ErrSubmission, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return FeedbackAck{}, fmt.Errorf("%w: %v", ErrSubmission, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return FeedbackAck{}, fmt.Errorf("%w: endpoint returned %d", ErrSubmission, resp.StatusCode)
	}

	return FeedbackAck{
		ID:    payload.ID,
		Color: brutalColors[rand.Intn(len(brutalColors))],
	}, nil
}
