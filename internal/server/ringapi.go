package server

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YuHsuanChien/portfolio/internal/ring"
)

type ringQuery struct {
	Count    int     `form:"count"`
	Radius   float64 `form:"radius"`
	Focus    *int    `form:"focus"`
	Axis     string  `form:"axis"`
	Offset   float64 `form:"offset"`
	Carousel bool    `form:"carousel"`
}

// ringLayout exposes the layout engine as JSON for client-side scenes.
func (s *Server) ringLayout(c *gin.Context) {
	var q ringQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, v := range []float64{q.Radius, q.Offset} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius and offset must be finite numbers"})
			return
		}
	}
	axis, err := ring.ParseAxis(q.Axis)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := ring.Config{Count: q.Count, Radius: q.Radius, Focus: ring.NoFocus, Axis: axis, Offset: q.Offset}
	if q.Focus != nil {
		cfg.Focus = *q.Focus
	}
	layout := ring.Layout
	if q.Carousel {
		layout = ring.Carousel
	}
	ps, err := layout(cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      cfg.Count,
		"radius":     cfg.Radius,
		"axis":       axis.String(),
		"placements": ps,
	})
}
