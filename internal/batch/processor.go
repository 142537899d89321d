package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"vmatgen/internal/logging"
	"vmatgen/internal/material"
	"vmatgen/internal/texture"
)

// DescriptorExt is the extension of generated material files.
const DescriptorExt = ".vmat"

// Config holds all shared resources for a batch run.
type Config struct {
	Source        material.Source
	Options       material.Options
	Log           *logging.Logger
	Workers       int
	KeepPacked    bool
	ConvertLegacy bool
	DryRun        bool
}

// Result holds the outcome of processing one folder.
type Result struct {
	Folder     string            `json:"folder"`
	Descriptor string            `json:"descriptor,omitempty"`
	Textures   map[string]string `json:"textures,omitempty"`
	Flags      []string          `json:"flags,omitempty"`
	Derived    []string          `json:"derived,omitempty"`
	Removed    string            `json:"removed,omitempty"`
	Notices    []material.Notice `json:"notices,omitempty"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`

	Err     error  `json:"-"`
	Content []byte `json:"-"` // descriptor bytes, also set on dry runs
}

// Folders returns the immediate subdirectories of root, sorted by name.
func Folders(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootMissing, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", root, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// progressInterval is how often Run logs throughput.
const progressInterval = 2 * time.Second

// Run processes all folders using a worker pool. Results keep the order of folders.
// Cancelling ctx stops handing out folders; folders already started finish.
func Run(ctx context.Context, cfg Config, folders []string) []Result {
	results := make([]Result, len(folders))
	var processed atomic.Int64

	workers := max(cfg.Workers, 1)
	stop := cfg.logProgress(&processed, len(folders))
	defer stop()

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = ProcessFolder(cfg, folders[idx])
				processed.Add(1)
			}
		}()
	}

	next := 0
	for next < len(folders) && ctx.Err() == nil {
		select {
		case jobs <- next:
			next++
		case <-ctx.Done():
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(folders); i++ {
		results[i] = failed(filepath.Base(folders[i]), ctx.Err())
	}
	return results
}

// logProgress logs "[done/total] rate" every progressInterval until the returned
// func is called. It does nothing without a logger.
func (cfg Config) logProgress(processed *atomic.Int64, total int) (stop func()) {
	if cfg.Log == nil {
		return func() {}
	}

	start := time.Now()
	ticker := time.NewTicker(progressInterval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					cfg.Log.Info("[%d/%d] %.1f folders/sec", p, total, rate)
				}
			}
		}
	}()
	return func() { close(done) }
}

// ProcessFolder generates the descriptor of one folder and applies its side effects:
// derived planes are written, the packed source is removed, the descriptor is stored.
func ProcessFolder(cfg Config, folder string) Result {
	name := filepath.Base(folder)

	if cfg.ConvertLegacy && !cfg.DryRun {
		conv, err := texture.ConvertLegacy(folder)
		if err != nil {
			cfg.warn("%s: legacy conversion: %v", name, err)
		}
		for _, c := range conv {
			if !c.Skipped {
				cfg.debug("%s: converted %s", name, filepath.Base(c.Source))
			}
		}
	}

	listing, err := cfg.Source.List(folder)
	if err != nil {
		return failed(name, fmt.Errorf("%w: %w", ErrFolderUnreadable, err))
	}

	res := material.Build(listing, &cfg.Options)
	out := Result{
		Folder:     name,
		Descriptor: filepath.Join(folder, listing.Folder+DescriptorExt),
		Textures:   res.Assignment.Paths(),
		Flags:      res.Flags.Names(),
		Notices:    res.Notices,
		Content:    res.Descriptor.Format(),
	}

	var planes []material.Plane
	keepPacked := cfg.KeepPacked
	if res.Split != nil {
		for _, p := range res.Split.Planes {
			out.Derived = append(out.Derived, p.Name)
		}
		var clashes []material.Notice
		planes, clashes = pendingPlanes(folder, res.Split.Planes)
		if len(clashes) > 0 {
			out.Notices = append(out.Notices, clashes...)
			keepPacked = true
		}
		if !keepPacked {
			out.Removed = res.Split.Source.Name
		}
	}
	cfg.report(name, out.Notices)

	if cfg.DryRun {
		out.Success = true
		return out
	}

	for _, p := range planes {
		if err := texture.SaveImage(filepath.Join(folder, p.Name), p.Image); err != nil {
			return withError(out, err)
		}
	}
	if out.Removed != "" {
		if err := os.Remove(filepath.Join(folder, out.Removed)); err != nil {
			return withError(out, fmt.Errorf("batch: remove packed texture: %w", err))
		}
	}

	if err := os.WriteFile(out.Descriptor, out.Content, 0644); err != nil {
		return withError(out, fmt.Errorf("batch: write descriptor: %w", err))
	}

	out.Success = true
	return out
}

// pendingPlanes returns the planes that still have to be written. A file already
// at a plane's path is skipped when it holds the same pixels (an earlier run wrote
// it); any other file is kept and reported as a collision.
func pendingPlanes(folder string, planes []material.Plane) ([]material.Plane, []material.Notice) {
	var write []material.Plane
	var notices []material.Notice
	for _, p := range planes {
		path := filepath.Join(folder, p.Name)
		if _, err := os.Stat(path); err != nil {
			write = append(write, p)
			continue
		}

		existing, err := texture.LoadTexture(path)
		if err == nil && samePixels(existing, p.Image) {
			continue
		}
		notices = append(notices, material.Notice{
			Kind:    material.NoticeCollision,
			File:    p.RelPath,
			Message: fmt.Sprintf("existing file differs from the derived %s plane; kept it and the packed source", p.Role),
		})
	}
	return write, notices
}

// samePixels reports whether img is the grayscale plane g.
func samePixels(img *image.NRGBA, g *image.Gray) bool {
	ib, gb := img.Bounds(), g.Bounds()
	if ib.Dx() != gb.Dx() || ib.Dy() != gb.Dy() {
		return false
	}
	for y := 0; y < gb.Dy(); y++ {
		for x := 0; x < gb.Dx(); x++ {
			c := img.NRGBAAt(ib.Min.X+x, ib.Min.Y+y)
			v := g.GrayAt(gb.Min.X+x, gb.Min.Y+y).Y
			if c.R != v || c.G != v || c.B != v {
				return false
			}
		}
	}
	return true
}

// report logs notices. Unmatched files are informational and only shown when verbose.
func (cfg Config) report(folder string, notices []material.Notice) {
	for _, n := range notices {
		if n.Kind == material.NoticeUnmatched {
			cfg.debug("%s: %s", folder, n)
			continue
		}
		cfg.warn("%s: %s", folder, n)
	}
}

func (cfg Config) warn(format string, args ...interface{}) {
	if cfg.Log != nil {
		cfg.Log.Warn(format, args...)
	}
}

func (cfg Config) debug(format string, args ...interface{}) {
	if cfg.Log != nil {
		cfg.Log.Debug(format, args...)
	}
}

func failed(folder string, err error) Result {
	return Result{Folder: folder, Error: err.Error(), Err: err}
}

func withError(r Result, err error) Result {
	r.Success = false
	r.Error = err.Error()
	r.Err = err
	return r
}
