// telemetry.go - Privacy-conscious visitor tracking and passive web vitals
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorMetric is one tracked page view. IPs are hashed before storage.
type VisitorMetric struct {
	ID        string    `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitorStats is the studio's read-only traffic summary.
type VisitorStats struct {
	TotalVisitors  int64           `json:"total_visitors"`
	UniqueVisitors int64           `json:"unique_visitors"`
	VisitorsToday  int64           `json:"visitors_today"`
	RecentVisitors []VisitorMetric `json:"recent_visitors"`
}

// WebVitals are browser performance signals the page beacons up. The site
// only observes them; nothing here influences behavior.
type WebVitals struct {
	LCP  float64 `json:"lcp"`
	CLS  float64 `json:"cls"`
	FID  float64 `json:"fid"`
	TTFB float64 `json:"ttfb"`
}

// VitalsReport pairs the latest sample with its grades.
type VitalsReport struct {
	Vitals    WebVitals `json:"vitals"`
	LCPGrade  string    `json:"lcp_grade"`
	CLSGrade  string    `json:"cls_grade"`
	FIDGrade  string    `json:"fid_grade"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Grade thresholds follow the Core Web Vitals bands.
func gradeLCP(ms float64) string {
	switch {
	case ms == 0:
		return "WAIT"
	case ms < 2500:
		return "GOOD"
	case ms < 4000:
		return "NEED_IMP"
	default:
		return "POOR"
	}
}

func gradeCLS(val float64) string {
	switch {
	case val == 0:
		return "WAIT"
	case val < 0.1:
		return "GOOD"
	case val < 0.25:
		return "NEED_IMP"
	default:
		return "POOR"
	}
}

func gradeFID(ms float64) string {
	switch {
	case ms == 0:
		return "WAIT"
	case ms < 100:
		return "GOOD"
	case ms < 300:
		return "NEED_IMP"
	default:
		return "POOR"
	}
}

var hashingSalt string

func initTelemetry() {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	hashingSalt = hex.EncodeToString(bytes)

	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id TEXT PRIMARY KEY,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createVisitorTable); err != nil {
		log.Fatal("Failed to create visitors table:", err)
	}

	cleanupOldVisitorData()

	log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
}

// Hash IP address for privacy compliance (consistent per IP)
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorTrackingMiddleware records page views, skipping assets, the
// studio, and anyone sending Do Not Track.
func visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/projects/") ||
			strings.HasPrefix(path, "/studio") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go trackVisitor(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func trackVisitor(ip, userAgent, path string) {
	// SQLite's date functions only understand the canonical text format,
	// so never hand them a raw time.Time.
	_, err := db.Exec(`
		INSERT INTO visitors (id, hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), hashIP(ip), userAgent, path, sqliteTime(time.Now()))

	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

func cleanupOldVisitorData() {
	result, err := db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}

	if rowsDeleted, _ := result.RowsAffected(); rowsDeleted > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than 12 months", rowsDeleted)
	}
}

func getVisitorStats() (*VisitorStats, error) {
	stats := &VisitorStats{}

	if err := db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var visitor VisitorMetric
		var stamp string
		if err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &stamp); err != nil {
			continue
		}
		visitor.Timestamp, _ = time.Parse("2006-01-02 15:04:05", stamp)
		stats.RecentVisitors = append(stats.RecentVisitors, visitor)
	}

	return stats, nil
}

// vitalsBoard holds the most recent beaconed sample.
type vitalsBoard struct {
	mu     sync.Mutex
	latest WebVitals
	at     time.Time
}

func (v *vitalsBoard) Record(sample WebVitals) {
	v.mu.Lock()
	v.latest = sample
	v.at = time.Now()
	v.mu.Unlock()
}

func (v *vitalsBoard) Report() VitalsReport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return VitalsReport{
		Vitals:    v.latest,
		LCPGrade:  gradeLCP(v.latest.LCP),
		CLSGrade:  gradeCLS(v.latest.CLS),
		FIDGrade:  gradeFID(v.latest.FID),
		UpdatedAt: v.at,
	}
}
