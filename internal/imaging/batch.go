package imaging

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
)

// Config holds the settings for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	MaxWidth  int
	Workers   int
}

// Result is the outcome of converting one picture.
type Result struct {
	Source  string `json:"source"`
	Thumb   string `json:"thumb,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Sources lists convertible pictures under dir, relative to dir, sorted.
func Sources(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSource(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// Run converts every source with a pool of workers. Results keep the order of
// sources.
func Run(cfg Config, sources []string) []Result {
	total := len(sources)
	results := make([]Result, total)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	var processed atomic.Int64
	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					log.Printf("[%d/%d] %.1f images/sec", p, total, float64(p)/time.Since(start).Seconds())
				}
			}
		}
	}()

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = convertOne(cfg, sources[i])
				processed.Add(1)
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)
	return results
}

func convertOne(cfg Config, rel string) Result {
	thumb := ThumbName(rel)
	size, err := Convert(
		filepath.Join(cfg.InputDir, filepath.FromSlash(rel)),
		filepath.Join(cfg.OutputDir, filepath.FromSlash(thumb)),
		cfg.MaxWidth,
	)
	if err != nil {
		return Result{Source: rel, Error: err.Error()}
	}
	return Result{Source: rel, Thumb: thumb, Width: size.X, Height: size.Y, Success: true}
}

// WriteManifest writes the successful results as JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Success {
			entries = append(entries, r)
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
