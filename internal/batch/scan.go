// Package batch audits directories of SKM model files concurrently:
// every file is parsed, built into a model, and indexed, so malformed
// hierarchies surface before an edit session ever opens them.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"skm-editor/internal/skeleton"
	"skm-editor/internal/skm"
)

// Config holds the shared settings for one scan run.
type Config struct {
	Dir      string
	Workers  int
	Progress bool // periodic rate reporting on stdout
}

// Result holds the audit outcome for one model file.
type Result struct {
	Path    string
	Name    string
	Joints  int
	Objects int
	Error   string
}

// Scan audits every .skm file under cfg.Dir using a worker pool. Results
// come back in path order regardless of completion order.
func Scan(cfg Config) ([]Result, error) {
	files, err := collect(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f files/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range fileChan {
				results[i] = scanFile(files[i])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results, nil
}

func collect(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".skm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func scanFile(path string) Result {
	f, err := skm.Parse(path)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}

	m, err := skeleton.FromFile(f)
	if err != nil {
		return Result{Path: path, Name: f.Name, Error: err.Error()}
	}

	idx, err := skeleton.BuildIndex(m)
	if err != nil {
		return Result{Path: path, Name: f.Name, Error: err.Error()}
	}

	return Result{
		Path:    path,
		Name:    f.Name,
		Joints:  len(idx.Joints),
		Objects: idx.TotalObjects(),
	}
}
