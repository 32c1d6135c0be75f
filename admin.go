// admin.go - Studio: the local preview gate and content simulation session
package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// The gate is not a security boundary: the access key is a shared static
// constant on a single-user site. It exists to keep casual visitors out of
// the simulation shell, nothing more.
var (
	ErrAccessDenied = errors.New("access denied")
	ErrLocked       = errors.New("studio locked")
	ErrUnknownField = errors.New("unknown work item field")
)

const sessionLogLimit = 10

var studioToken string

// initStudioToken generates the per-process cookie token handed out after
// the gate opens.
func initStudioToken() {
	studioToken = generateStudioToken()

	log.Printf("Studio access available at: /studio/login")
	if ginDebug() {
		log.Printf("Studio token (dev only): %s", studioToken)
	}
}

func generateStudioToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate studio token:", err)
	}
	return hex.EncodeToString(bytes)
}

// StudioSession is the client-local editing simulation over the override
// store. One-way Locked -> Unlocked; no expiry, no re-lock. Every mutation
// persists immediately through the store and lands in the bounded session
// log.
type StudioSession struct {
	store     *OverrideStore
	accessKey string

	mu       sync.Mutex
	unlocked bool
	nextID   int
	logLines []string
}

func NewStudioSession(store *OverrideStore, accessKey string) *StudioSession {
	s := &StudioSession{
		store:     store,
		accessKey: accessKey,
		nextID:    highestNumericID(store.WorkItems()) + 1,
	}
	s.appendLog("SYSTEM", "INITIALIZED_SIMULATION_SHELL")
	s.appendLog("INFO", "AWAITING_ACCESS_KEY")
	return s
}

// highestNumericID seeds the id counter past every numeric id already in
// the collection, so ids of deleted items are never reissued.
func highestNumericID(items []WorkItem) int {
	highest := 0
	for _, item := range items {
		if n, err := strconv.Atoi(item.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

func (s *StudioSession) appendLog(tag, msg string) {
	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("15:04:05"), tag, msg)
	s.logLines = append([]string{line}, s.logLines...)
	if len(s.logLines) > sessionLogLimit {
		s.logLines = s.logLines[:sessionLogLimit]
	}
}

// Log returns the session log, newest first. Display-only, never persisted.
func (s *StudioSession) Log() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.logLines)
}

// Unlock compares the candidate against the configured access key. Failure
// leaves the session locked and is logged; success is irreversible for the
// life of the process.
func (s *StudioSession) Unlock(candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(s.accessKey)) != 1 {
		s.appendLog("ERROR", "UNAUTHORIZED_ACCESS_ATTEMPT")
		return ErrAccessDenied
	}
	if !s.unlocked {
		s.unlocked = true
		s.appendLog("SYSTEM", "SIMULATION_ACCESS_GRANTED: PREVIEW_STARTED")
	}
	return nil
}

// Unlocked reports the gate state.
func (s *StudioSession) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

func (s *StudioSession) requireUnlocked() error {
	if !s.unlocked {
		return ErrLocked
	}
	return nil
}

// AddWorkItem stages a placeholder item with the next sequential two-digit
// id and persists the grown collection.
func (s *StudioSession) AddWorkItem() (WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return WorkItem{}, err
	}

	item := WorkItem{
		ID:          fmt.Sprintf("%02d", s.nextID),
		Title:       "SIM_PROJECT",
		Category:    "UI_TEMPLATE",
		Description: "Temporary simulation content.",
		Tech:        []string{"HTML5", "CSS3"},
		Year:        strconv.Itoa(time.Now().Year()),
		Link:        "#",
		DemoURL:     "#",
		Color:       "bg-brutal-pink-neon",
	}
	s.nextID++

	items := append(s.store.WorkItems(), item)
	err := s.store.SetWorkItems(items)
	s.appendLog("SIM_CREATED", "PROJECT_ID_"+item.ID)
	if err != nil {
		s.appendLog("WARN", "SNAPSHOT_WRITE_FAILED")
	}
	return item, err
}

// UpdateWorkItem replaces one field on the item matching id. Absent ids are
// a no-op. Tech is addressed as a comma-separated list.
func (s *StudioSession) UpdateWorkItem(id, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	items := s.store.WorkItems()
	idx := slices.IndexFunc(items, func(w WorkItem) bool { return w.ID == id })
	if idx < 0 {
		return nil
	}

	switch field {
	case "title":
		items[idx].Title = value
	case "category":
		items[idx].Category = value
	case "description":
		items[idx].Description = value
	case "tech":
		items[idx].Tech = splitTechList(value)
	case "year":
		items[idx].Year = value
	case "imageUrl":
		items[idx].ImageURL = value
	case "link":
		items[idx].Link = value
	case "demoUrl":
		items[idx].DemoURL = value
	case "color":
		items[idx].Color = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	err := s.store.SetWorkItems(items)
	s.appendLog("SIM_UPDATE", fmt.Sprintf("PROJECT_%s_%s", id, strings.ToUpper(field)))
	if err != nil {
		s.appendLog("WARN", "SNAPSHOT_WRITE_FAILED")
	}
	return err
}

// RemoveWorkItem filters the item out. Absent ids are a no-op.
func (s *StudioSession) RemoveWorkItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	items := s.store.WorkItems()
	kept := slices.DeleteFunc(slices.Clone(items), func(w WorkItem) bool { return w.ID == id })
	if len(kept) == len(items) {
		return nil
	}

	err := s.store.SetWorkItems(kept)
	s.appendLog("SIM_DELETED", "PROJECT_"+id)
	if err != nil {
		s.appendLog("WARN", "SNAPSHOT_WRITE_FAILED")
	}
	return err
}

// AddSkill appends an entry to the stack grid.
func (s *StudioSession) AddSkill(name, level string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	skills := append(s.store.Skills(), SkillEntry{Name: name, Level: level})
	err := s.store.SetSkills(skills)
	s.appendLog("SIM_CREATED", "STACK_"+name)
	if err != nil {
		s.appendLog("WARN", "SNAPSHOT_WRITE_FAILED")
	}
	return err
}

// RemoveSkillAt drops the entry at index. Out-of-range indexes are a no-op.
func (s *StudioSession) RemoveSkillAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	skills := s.store.Skills()
	if index < 0 || index >= len(skills) {
		return nil
	}
	name := skills[index].Name
	skills = append(skills[:index], skills[index+1:]...)

	err := s.store.SetSkills(skills)
	s.appendLog("SIM_DELETED", "STACK_"+name)
	if err != nil {
		s.appendLog("WARN", "SNAPSHOT_WRITE_FAILED")
	}
	return err
}

// ExportSnapshot renders the full current collections as a source-shaped
// blob for manual promotion into defaults.go. This is the only path by
// which session edits outlive the deployment's storage.
func (s *StudioSession) ExportSnapshot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return "", err
	}

	work, err := json.MarshalIndent(s.store.WorkItems(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("export work items: %w", err)
	}
	skills, err := json.MarshalIndent(s.store.Skills(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("export skills: %w", err)
	}

	s.appendLog("SYSTEM", "PRODUCTION_CODE_EXPORTED")
	var b strings.Builder
	b.WriteString("// PERMANENT SOURCE UPDATE\n")
	b.WriteString("// Paste over the collections in defaults.go to promote this session.\n\n")
	fmt.Fprintf(&b, "const defaultWorkItemsJSON = `%s`\n\n", work)
	fmt.Fprintf(&b, "const defaultSkillsJSON = `%s`\n", skills)
	return b.String(), nil
}

func splitTechList(value string) []string {
	var tags []string
	for _, tag := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// Middleware to check the studio cookie after the gate opened
func studioGateMiddleware(session *StudioSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("studio_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(studioToken)) != 1 || !session.Unlocked() {
			c.Redirect(http.StatusFound, "/studio/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// respondMutation maps session errors onto HTTP. A persistence failure is
// reported but not fatal: the edit is live in memory.
func respondMutation(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, ErrLocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "studio locked"})
	case errors.Is(err, ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrPersistence):
		c.JSON(http.StatusOK, gin.H{"status": "ok", "warning": "snapshot write failed; edit is not durable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Setup all studio routes
func setupStudioRoutes(r *gin.Engine, session *StudioSession, store *OverrideStore) {
	// Studio login page
	r.GET("/studio/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "studio-login.html", gin.H{
			"title": "Simulation Portal",
		})
	})

	// Gate handler: exact key match, one-way unlock, cookie for the rest
	// of the process lifetime.
	r.POST("/studio/login", func(c *gin.Context) {
		key := c.PostForm("access_key")

		if err := session.Unlock(key); err != nil {
			log.Printf("Failed studio access attempt from %s", hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "studio-login.html", gin.H{
				"error": "ACCESS_DENIED",
			})
			return
		}

		c.SetCookie("studio_token", studioToken, 3600*24, "/studio", "", false, true)
		log.Printf("Studio unlocked from %s", hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/studio/panel")
	})

	studio := r.Group("/studio")
	studio.Use(studioGateMiddleware(session))

	studio.GET("/panel", func(c *gin.Context) {
		stats, err := getVisitorStats()
		if err != nil {
			log.Printf("Error loading visitor stats: %v", err)
			stats = &VisitorStats{}
		}
		c.HTML(http.StatusOK, "studio.html", gin.H{
			"workItems": store.WorkItems(),
			"skills":    store.Skills(),
			"log":       session.Log(),
			"stats":     stats,
		})
	})

	// Studio API endpoints for the panel's fetch calls
	studio.POST("/api/work", func(c *gin.Context) {
		item, err := session.AddWorkItem()
		if err != nil && !errors.Is(err, ErrPersistence) {
			respondMutation(c, err)
			return
		}
		resp := gin.H{"item": item}
		if errors.Is(err, ErrPersistence) {
			resp["warning"] = "snapshot write failed; edit is not durable"
		}
		c.JSON(http.StatusOK, resp)
	})

	studio.PATCH("/api/work/:id", func(c *gin.Context) {
		var req struct {
			Field string `json:"field" binding:"required"`
			Value string `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondMutation(c, session.UpdateWorkItem(c.Param("id"), req.Field, req.Value))
	})

	studio.DELETE("/api/work/:id", func(c *gin.Context) {
		respondMutation(c, session.RemoveWorkItem(c.Param("id")))
	})

	studio.POST("/api/skills", func(c *gin.Context) {
		var req struct {
			Name  string `json:"name" binding:"required"`
			Level string `json:"level"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondMutation(c, session.AddSkill(req.Name, req.Level))
	})

	studio.DELETE("/api/skills/:index", func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad index"})
			return
		}
		respondMutation(c, session.RemoveSkillAt(index))
	})

	// Source-shaped export for manual promotion into defaults.go
	studio.GET("/api/export", func(c *gin.Context) {
		blob, err := session.ExportSnapshot()
		if err != nil {
			respondMutation(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=defaults-snapshot.txt")
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(blob))
	})

	studio.GET("/api/log", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"log": session.Log()})
	})

	studio.GET("/api/stats", func(c *gin.Context) {
		stats, err := getVisitorStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Discard overrides and fall back to bundled defaults.
	studio.POST("/api/reset", func(c *gin.Context) {
		respondMutation(c, store.Reset())
	})
}
