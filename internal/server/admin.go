package server

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YuHsuanChien/portfolio/internal/store"
)

const adminCookie = "admin_token"

type admin struct {
	token    string
	salt     string
	username string
	password string
}

func newAdmin(username, password string) *admin {
	a := &admin{
		token:    generateToken(),
		salt:     generateToken(), // Use for IP hashing
		username: username,
		password: password,
	}

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", a.token)
	}
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	return a
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

func (a *admin) checkCredentials(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// Middleware to check admin authentication
func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	a := s.admin

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			// Secure cookie (24 hours)
			c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"sessions": s.sessions.Len(),
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/visitors", func(c *gin.Context) {
		if s.store == nil {
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Analytics disabled"})
			return
		}
		visitors, err := s.store.Visitors(c.Request.Context(), 200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	// Reset the view counter of one experience detail
	group.DELETE("/details/:type", func(c *gin.Context) {
		if s.store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Analytics disabled"})
			return
		}
		typ := c.Param("type")
		ok, err := s.store.DeleteDetail(c.Request.Context(), typ)
		if err != nil {
			log.Printf("Error deleting detail counter %s: %v", typ, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset counter"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Counter not found"})
			return
		}
		log.Printf("Detail counter %s reset by admin from %s", typ, a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Counter reset"})
	})

	group.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		s.async(func() { s.cleanupVisitors(context.Background()) })
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}

var errAnalyticsDisabled = errors.New("analytics disabled")

func (s *Server) stats(ctx context.Context) (*store.Stats, error) {
	if s.store == nil {
		return nil, errAnalyticsDisabled
	}
	return s.store.Stats(ctx, time.Now())
}
