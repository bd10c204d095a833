package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// untracked paths are assets, fragments and pages that should not count.
var untracked = []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/ui/", "/api/", "/json/"}

// Hash IP address for privacy compliance (consistent per IP while the
// process runs)
func (a *admin) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorTracking records page views with hashed IPs and honors DNT.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s.store == nil || c.Request.Method != "GET" || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		for _, p := range untracked {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		hashed := s.admin.hashIP(c.ClientIP())
		ua := c.GetHeader("User-Agent")
		s.async(func() {
			if err := s.store.RecordVisit(context.Background(), hashed, ua, path, time.Now()); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		})
		c.Next()
	}
}
