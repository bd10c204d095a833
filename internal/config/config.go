// Package config reads settings from the environment. A .env file in the
// working directory is loaded first.
package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds every setting the server reads.
type Config struct {
	Port       string
	DBPath     string
	ContentDir string // empty means the embedded defaults
	ImagesDir  string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string

	AdminUsername string
	AdminPassword string

	// CarouselRadius overrides the radius from site.yaml when > 0.
	CarouselRadius float64
}

// Load reads the environment, falling back to development defaults.
func Load() (Config, error) {
	c := Config{
		Port:          getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "portfolio.db"),
		ContentDir:    os.Getenv("CONTENT_DIR"),
		ImagesDir:     getenv("IMAGES_DIR", "./images"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		ToEmail:       os.Getenv("TO_EMAIL"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if v := os.Getenv("CAROUSEL_RADIUS"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || !(r > 0) || math.IsInf(r, 1) {
			return Config{}, fmt.Errorf("config: CAROUSEL_RADIUS must be a positive number, got %q", v)
		}
		c.CarouselRadius = r
	}

	// Default credentials for development only
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if c.AdminPassword == "" {
		c.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	return c, nil
}

// SMTPConfigured reports whether contact mail can be sent.
func (c Config) SMTPConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != "" && c.ToEmail != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
