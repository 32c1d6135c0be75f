package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

// Default ingestion endpoint for the visitor-log feed. Override with
// FEED_URL for a different sheet deployment.
const defaultFeedURL = "https://script.google.com/macros/s/AKfycbwzoOS3t7HIUqgjpAEAKC2LnBlwgivJPwZIhduvbBrsn03S_QWHBuNnctDskoAk8HXl/exec"

func main() {
	initStudioToken()
	registerValidations()

	storage, err := openStorage(envOr("DB_PATH", "wdezzo.db"))
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	initTelemetry()

	store := NewOverrideStore(storage)
	session := NewStudioSession(store, accessKeyFromEnv())
	drafts := NewDraftStore(storage)

	feedURL := envOr("FEED_URL", defaultFeedURL)
	reconciler := NewFeedReconciler(feedURL)
	gateway := NewFeedbackGateway(feedURL)
	vitals := &vitalsBoard{}

	r := gin.Default()
	r.Use(visitorTrackingMiddleware())
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")
	r.Static("/projects", "./projects")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		theme, _, _ := storage.Get(keyTheme)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"workItems": store.WorkItems(),
			"skills":    store.Skills(),
			"theme":     theme,
		})
	})

	// Testimonials fragment: live feed when the sync succeeds with entries,
	// bundled archive otherwise.
	r.GET("/testimonials", func(c *gin.Context) {
		resolution := reconciler.FetchAndResolve(c.Request.Context(), TestimonialSafelist)
		shown := visibleTestimonials(resolution.Data)
		status := "LOCAL_LOGS"
		if resolution.Live {
			status = "FEED_SYNCED"
		}
		c.HTML(http.StatusOK, "testimonials.html", gin.H{
			"testimonials": shown,
			"live":         resolution.Live,
			"status":       status,
			"count":        len(shown),
		})
	})

	// Theme preference shares the snapshot store.
	r.GET("/theme", func(c *gin.Context) {
		theme, ok, _ := storage.Get(keyTheme)
		if !ok {
			theme = "light"
		}
		c.JSON(http.StatusOK, gin.H{"theme": theme})
	})
	r.PUT("/theme", func(c *gin.Context) {
		var req struct {
			Theme string `json:"theme" binding:"required,oneof=light dark"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := storage.Put(keyTheme, req.Theme); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	setupFeedbackRoutes(r, drafts, gateway)
	setupPreviewRoutes(r, store)
	setupStudioRoutes(r, session, store)

	// Passive performance signals from the page beacon.
	r.POST("/telemetry/vitals", func(c *gin.Context) {
		var sample WebVitals
		if err := c.ShouldBindJSON(&sample); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		vitals.Record(sample)
		c.Status(http.StatusNoContent)
	})
	r.GET("/telemetry/vitals", func(c *gin.Context) {
		c.JSON(http.StatusOK, vitals.Report())
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if err := sendContactEmail(name, email, message); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// setupFeedbackRoutes wires the floating widget: draft autosave, restore,
// and the submission push.
func setupFeedbackRoutes(r *gin.Engine, drafts *DraftStore, gateway *FeedbackGateway) {
	r.GET("/feedback/draft", func(c *gin.Context) {
		draft, ok := drafts.Restore()
		if !ok {
			c.JSON(http.StatusOK, gin.H{"draft": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"draft": draft})
	})

	r.PUT("/feedback/draft", func(c *gin.Context) {
		var draft FeedbackDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := drafts.Persist(draft); err != nil {
			if errors.Is(err, ErrDraftClosed) {
				c.JSON(http.StatusConflict, gin.H{"error": "draft already submitted"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Opening the widget again after a submission starts a fresh lifecycle.
	r.POST("/feedback/draft/reset", func(c *gin.Context) {
		drafts.Reopen()
		c.Status(http.StatusNoContent)
	})

	r.POST("/feedback", func(c *gin.Context) {
		var sub FeedbackSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ack, err := gateway.Submit(c.Request.Context(), sub)
		if err != nil {
			// Draft stays put so retry loses nothing.
			log.Printf("Feedback submission failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "DATA_LINK_FAILURE", "retry": true})
			return
		}

		if err := drafts.Clear(); err != nil {
			log.Printf("Failed to clear feedback draft: %v", err)
		}
		c.JSON(http.StatusOK, ack)
	})
}

// setupPreviewRoutes wires the device simulator. Unknown ids get the
// terminal not-found view; everything else renders the scaled frame page.
func setupPreviewRoutes(r *gin.Engine, store *OverrideStore) {
	r.GET("/preview/:id", func(c *gin.Context) {
		item, found := store.WorkItem(c.Param("id"))
		if !found {
			c.HTML(http.StatusNotFound, "preview-notfound.html", gin.H{
				"id": c.Param("id"),
			})
			return
		}
		sim := NewViewportSimulator(demoDocument(item), 0)
		c.HTML(http.StatusOK, "preview.html", gin.H{
			"item":     item,
			"document": sim.Document(),
			"widths":   simulatedWidths,
			"mode":     sim.Geometry().Mode,
			"loading":  sim.Loading(),
		})
	})

	// Geometry endpoint for the frame script: recomputed on every mode
	// change and resize, never persisted.
	r.GET("/preview/:id/geometry", func(c *gin.Context) {
		item, found := store.WorkItem(c.Param("id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		mode := ViewportMode(c.DefaultQuery("mode", string(ModeLaptop)))
		if !validMode(mode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown viewport mode"})
			return
		}
		var container int
		if _, err := fmt.Sscanf(c.DefaultQuery("container", "0"), "%d", &container); err != nil || container < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad container width"})
			return
		}
		sim := NewViewportSimulator(demoDocument(item), container)
		sim.SetMode(mode)
		c.JSON(http.StatusOK, sim.Geometry())
	})
}

func accessKeyFromEnv() string {
	key := os.Getenv("ACCESS_KEY")
	if key == "" {
		key = "WDEZZO_ADMIN_2025"
		if ginDebug() {
			log.Println("WARNING: Using default studio access key. Set ACCESS_KEY environment variable.")
		}
	}
	return key
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func ginDebug() bool {
	return gin.Mode() == gin.DebugMode
}

func sendContactEmail(name, email, message string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	toEmail := os.Getenv("TO_EMAIL")

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if toEmail == "" {
		toEmail = "abdalla.izzeldin98@gmail.com"
	}

	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Printf("Email sent successfully from %s (%s)", name, email)
	return nil
}
