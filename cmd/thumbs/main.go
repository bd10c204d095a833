// Command thumbs converts portfolio pictures into WebP thumbnails and writes a
// manifest.json describing them.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/YuHsuanChien/portfolio/internal/imaging"
)

func main() {
	in := flag.String("in", "images", "directory with source PNG/JPEG pictures")
	out := flag.String("out", "images/thumbs", "output directory")
	width := flag.Int("width", 640, "maximum thumbnail width in pixels")
	workers := flag.Int("workers", 0, "number of worker goroutines (default: NumCPU)")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	sources, err := imaging.Sources(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing %s: %v\n", *in, err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Println("No pictures to convert.")
		return
	}

	fmt.Printf("Pictures: %d, Workers: %d, Max width: %d\n", len(sources), *workers, *width)
	start := time.Now()

	results := imaging.Run(imaging.Config{
		InputDir:  *in,
		OutputDir: *out,
		MaxWidth:  *width,
		Workers:   *workers,
	}, sources)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  FAIL %s: %s\n", r.Source, r.Error)
		}
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	manifest := filepath.Join(*out, "manifest.json")
	if err := imaging.WriteManifest(manifest, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %s: %d converted, %d failed. Manifest: %s\n",
		time.Since(start).Round(time.Millisecond), len(results)-failed, failed, manifest)
	if failed > 0 {
		os.Exit(1)
	}
}
