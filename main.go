package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YuHsuanChien/portfolio/internal/config"
	"github.com/YuHsuanChien/portfolio/internal/server"
	"github.com/YuHsuanChien/portfolio/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var st *store.Store
	if cfg.DBPath != "" {
		st, err = store.Open(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
		defer st.Close()
	}

	var contentFS fs.FS
	if cfg.ContentDir != "" {
		contentFS = os.DirFS(cfg.ContentDir)
		log.Printf("Loading content from %s", cfg.ContentDir)
	}

	srv, err := server.New(server.Options{
		Config:    cfg,
		ContentFS: contentFS,
		Store:     st,
	})
	if err != nil {
		log.Fatal(err)
	}
	r, err := srv.Router()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go srv.RunMaintenance(ctx, 24*time.Hour)

	if !cfg.SMTPConfigured() {
		log.Println("WARNING: SMTP credentials not set; the contact form will report errors")
	}
	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
