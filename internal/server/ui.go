package server

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Fragment endpoints for HTMX. Each returns the HTML of the piece it changed.

func (s *Server) renderSidebar(c *gin.Context) {
	c.HTML(http.StatusOK, "sidebar.html", pageData{
		Site:        s.site,
		SidebarOpen: session(c).Sidebar.IsOpen(),
	})
}

func (s *Server) toggleSidebar(c *gin.Context) {
	session(c).Sidebar.Toggle()
	s.renderSidebar(c)
}

func (s *Server) closeSidebar(c *gin.Context) {
	session(c).Sidebar.Close()
	s.renderSidebar(c)
}

type viewportForm struct {
	Width int `form:"width" binding:"required,min=1"`
}

// viewport is posted (debounced) by the page on resize.
func (s *Server) viewport(c *gin.Context) {
	var f viewportForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session(c).Sidebar.Resize(f.Width)
	s.renderSidebar(c)
}

func (s *Server) renderCarousel(c *gin.Context) {
	c.HTML(http.StatusOK, "carousel.html", s.carousel(session(c)))
}

func (s *Server) stepCarousel(delta int) gin.HandlerFunc {
	return func(c *gin.Context) {
		session(c).StepFocus(delta, len(s.site.Experience.Cards))
		s.renderCarousel(c)
	}
}

func (s *Server) focusCarousel(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card index"})
		return
	}
	session(c).SetFocus(i, len(s.site.Experience.Cards))
	s.renderCarousel(c)
}

func (s *Server) renderAlert(c *gin.Context) {
	c.HTML(http.StatusOK, "experience-alert.html", s.alert(session(c)))
}

func (s *Server) openExperience(c *gin.Context) {
	typ := c.Param("type")
	sess := session(c)
	sess.Alert.SetType(typ)
	sess.Alert.SetOpen(true)

	if s.store != nil {
		s.async(func() {
			if err := s.store.RecordDetailView(context.Background(), typ, time.Now()); err != nil {
				log.Printf("Error recording detail view: %v", err)
			}
		})
	}
	s.renderAlert(c)
}

func (s *Server) closeExperience(c *gin.Context) {
	session(c).Alert.SetOpen(false)
	s.renderAlert(c)
}
