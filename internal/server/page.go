package server

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YuHsuanChien/portfolio/internal/content"
	"github.com/YuHsuanChien/portfolio/internal/ring"
	"github.com/YuHsuanChien/portfolio/internal/state"
)

type cardView struct {
	content.Card
	Index   int
	Current bool
	Style   template.CSS
}

type carouselView struct {
	Cards []cardView
	Focus int
	Error string
}

type alertView struct {
	Open       bool
	Type       string
	Card       string // title of the carousel card of Type
	Found      bool
	Error      string
	Experience content.Experience
}

type pageData struct {
	Site        *content.Site
	SidebarOpen bool
	BannerCSS   template.CSS
	Dots        []int
	Wall        []content.Tile
	Carousel    carouselView
	Alert       alertView
	Year        int
}

func (s *Server) index(c *gin.Context) {
	sess := session(c)
	dots := make([]int, bannerDots)
	for i := range dots {
		dots[i] = i
	}
	c.HTML(http.StatusOK, "index.html", pageData{
		Site:        s.site,
		SidebarOpen: sess.Sidebar.IsOpen(),
		BannerCSS:   s.banner,
		Dots:        dots,
		Wall:        content.Wall(s.site.Portfolio),
		Carousel:    s.carousel(sess),
		Alert:       s.alert(sess),
		Year:        time.Now().Year(),
	})
}

// carousel lays the experience cards on the vertical ring with the focused
// card at the front.
func (s *Server) carousel(sess *state.Session) carouselView {
	cards := s.site.Experience.Cards
	focus := sess.Focus()
	ps, err := ring.Carousel(ring.Config{
		Count:  len(cards),
		Radius: s.site.Experience.Radius,
		Focus:  focus,
		Axis:   ring.Vertical,
	})
	if err != nil {
		log.Printf("Error laying out experience carousel: %v", err)
		return carouselView{Focus: focus, Error: err.Error()}
	}

	view := carouselView{Focus: focus, Cards: make([]cardView, len(ps))}
	for i, p := range ps {
		st := ring.Style(p)
		view.Cards[i] = cardView{
			Card:    cards[i],
			Index:   i,
			Current: st.Current,
			Style:   template.CSS(st.Declarations()),
		}
	}
	return view
}

func (s *Server) alert(sess *state.Session) alertView {
	v := alertView{Open: sess.Alert.IsOpen(), Type: sess.Alert.Type()}
	if card, ok := s.site.Card(v.Type); ok {
		v.Card = card.Title
	}
	if s.expErr != nil {
		v.Error = s.expErr.Error()
		return v
	}
	v.Experience, v.Found = s.experiences.Find(v.Type)
	return v
}

func (s *Server) experienceJSON(c *gin.Context) {
	c.FileFromFS("experience.json", http.FS(s.content))
}
