package main

import "slices"

// WorkItem is one entry in the project showcase. IDs are the lookup key for
// every studio edit, so they must stay unique within the collection.
type WorkItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Year        string   `json:"year"`
	ImageURL    string   `json:"imageUrl"`
	Link        string   `json:"link"`
	DemoURL     string   `json:"demoUrl"`
	Color       string   `json:"color"`
}

// SkillEntry is one cell of the skills grid. Name is expected to be unique
// but nothing enforces it.
type SkillEntry struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Testimonial is a visitor-log entry, either bundled or fetched from the
// remote feed. A nil Visible means shown.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message"`
	Color   string `json:"color"`
	Rating  int    `json:"rating"`
	Visible *bool  `json:"show_in_testimonials,omitempty"`
}

// Shown reports whether the entry belongs in the rendered rotation.
func (t Testimonial) Shown() bool {
	return t.Visible == nil || *t.Visible
}

// visibleTestimonials filters out entries explicitly hidden from rotation.
func visibleTestimonials(items []Testimonial) []Testimonial {
	shown := make([]Testimonial, 0, len(items))
	for _, t := range items {
		if t.Shown() {
			shown = append(shown, t)
		}
	}
	return shown
}

// Section identifies which part of the landing page the visitor was on.
type Section string

const (
	SectionHero    Section = "HERO"
	SectionWork    Section = "WORK"
	SectionStack   Section = "STACK"
	SectionLogs    Section = "LOGS"
	SectionContact Section = "CONTACT"
)

// SessionMetadata is the interaction context a feedback submission carries:
// which projects the visitor opened and where on the page they were.
type SessionMetadata struct {
	ProjectHistory []string `json:"project_history"`
	CurrentSection Section  `json:"current_section" binding:"omitempty,section"`
}

// TrackProject records an opened project once; repeat visits are ignored so
// the history stays an ordered set.
func (m *SessionMetadata) TrackProject(id string) {
	if slices.Contains(m.ProjectHistory, id) {
		return
	}
	m.ProjectHistory = append(m.ProjectHistory, id)
}

// SetSection updates the visitor's current page section.
func (m *SessionMetadata) SetSection(s Section) {
	m.CurrentSection = s
}
