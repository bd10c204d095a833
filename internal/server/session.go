package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YuHsuanChien/portfolio/internal/state"
)

const (
	sessionCookie = "pf_session"
	sessionKey    = "session"
)

// sessionMiddleware binds the request to the visitor's UI state, creating a
// session and its cookie on first use. Only state-changing routes use it.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess := s.sessions.Get(id)
		if sess.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sess.ID, 3600*24*30, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// viewSession is sessionMiddleware for read-only pages: visitors without a
// session see the defaults and nothing is registered.
func (s *Server) viewSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess, ok := s.sessions.Lookup(id)
		if !ok {
			sess = state.NewSession()
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func session(c *gin.Context) *state.Session {
	return c.MustGet(sessionKey).(*state.Session)
}
