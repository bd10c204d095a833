// Package server serves the portfolio page, its HTMX fragments, the ring
// layout API and the admin area.
package server

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/YuHsuanChien/portfolio/internal/config"
	"github.com/YuHsuanChien/portfolio/internal/content"
	"github.com/YuHsuanChien/portfolio/internal/state"
	"github.com/YuHsuanChien/portfolio/internal/store"
	"github.com/YuHsuanChien/portfolio/web"
)

// Visitor data is kept for twelve months.
const visitorRetention = 12 * 30 * 24 * time.Hour

// Options wires the server's collaborators.
type Options struct {
	Config config.Config
	// ContentFS holds site.yaml and experience.json.
	ContentFS fs.FS
	Store     *store.Store
	Mailer    Mailer
}

type Server struct {
	cfg      config.Config
	site     *content.Site
	content  fs.FS
	store    *store.Store
	sessions *state.Registry
	admin    *admin
	mailer   Mailer
	banner   template.CSS

	// experiences failing to load is not fatal; the alert shows expErr.
	experiences content.Experiences
	expErr      error

	// async runs tracking writes off the request path.
	async func(func())
}

// New loads content and prepares a server. Only a broken site.yaml is fatal.
func New(opts Options) (*Server, error) {
	fsys := opts.ContentFS
	if fsys == nil {
		fsys = web.Content()
	}
	site, err := content.LoadSite(fsys, "site.yaml")
	if err != nil {
		return nil, err
	}
	if opts.Config.CarouselRadius > 0 {
		site.Experience.Radius = opts.Config.CarouselRadius
	}

	s := &Server{
		cfg:      opts.Config,
		site:     site,
		content:  fsys,
		store:    opts.Store,
		sessions: state.NewRegistry(),
		admin:    newAdmin(opts.Config.AdminUsername, opts.Config.AdminPassword),
		mailer:   opts.Mailer,
		banner:   template.CSS(bannerTimeline(bannerDots).CSS("banner", 30)),
		async:    func(f func()) { go f() },
	}
	if s.mailer == nil {
		s.mailer = smtpMailer{cfg: opts.Config}
	}

	s.experiences, s.expErr = content.LoadExperiences(fsys, "experience.json")
	if s.expErr != nil {
		log.Printf("Error loading experience data: %v", s.expErr)
	}
	return s, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"comma": humanize.Comma,
		"ago":   humanize.Time,
		"inc":   func(i int) int { return i + 1 },
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	setupValidators()
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.Templates(), "*.html")
	if err != nil {
		return nil, fmt.Errorf("server: parse templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(s.visitorTracking())

	r.StaticFS("/static", http.FS(web.Static()))
	if s.cfg.ImagesDir != "" {
		r.Static("/images", s.cfg.ImagesDir)
	}

	r.GET("/", s.viewSession(), s.index)
	r.GET("/json/experience.json", s.experienceJSON)
	r.GET("/api/ring", s.ringLayout)

	ui := r.Group("/ui", s.sessionMiddleware())
	ui.POST("/sidebar/toggle", s.toggleSidebar)
	ui.POST("/sidebar/close", s.closeSidebar)
	ui.POST("/viewport", s.viewport)
	ui.POST("/carousel/next", s.stepCarousel(1))
	ui.POST("/carousel/prev", s.stepCarousel(-1))
	ui.POST("/carousel/focus/:index", s.focusCarousel)
	ui.POST("/experience/open/:type", s.openExperience)
	ui.POST("/experience/close", s.closeExperience)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)

	s.setupAdminRoutes(r)
	return r, nil
}

// RunMaintenance cleans expired visitor data right away, then drops idle
// sessions and expired visitor data every interval until ctx is done.
func (s *Server) RunMaintenance(ctx context.Context, every time.Duration) {
	s.cleanupVisitors(ctx)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.maintain(ctx)
		}
	}
}

func (s *Server) maintain(ctx context.Context) {
	if n := s.sessions.Sweep(24 * time.Hour); n > 0 {
		log.Printf("Dropped %d idle sessions", n)
	}
	s.cleanupVisitors(ctx)
}

func (s *Server) cleanupVisitors(ctx context.Context) {
	if s.store == nil {
		return
	}
	n, err := s.store.Cleanup(ctx, time.Now().Add(-visitorRetention))
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", n)
	}
}
