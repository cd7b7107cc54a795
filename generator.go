package brandgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/brandgen/internal/brandgen"
	"github.com/yacobolo/brandgen/internal/export"
	"github.com/yacobolo/brandgen/internal/logger"
)

// Config holds generation configuration
type Config struct {
	SourceDir   string
	Includes    []string // doublestar patterns relative to SourceDir; DefaultIncludes when empty
	OutputDir   string
	Archive     bool // write <package>.zip instead of a <package>/ directory
	Export      export.Options
	Concurrency int  // brand files processed at once; GOMAXPROCS when <= 0
	Strict      bool // fail on invalid brand files instead of warning
	DryRun      bool // render everything but write nothing
	Logger      *logger.Logger
}

// Brand is one loaded brand file.
type Brand struct {
	Source   string
	Config   BrandConfig
	Library  *ComponentLibrary
	Warnings []string
	Err      error // load failure or, in strict mode, validation failure
}

// BrandOutput describes what was written for one brand.
type BrandOutput struct {
	Source  string
	Company string
	Path    string
	Files   int
}

// GenerateResult contains generation statistics
type GenerateResult struct {
	Scan     ScanStats
	Outputs  []BrandOutput
	Warnings []string
	Failed   int
}

func (c Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// LoadBrands discovers brand files, loads and validates them and assembles a
// library for each one. Per-file problems are reported on the Brand, never as
// the returned error.
func LoadBrands(ctx context.Context, config Config) ([]Brand, ScanStats, error) {
	log := config.Logger

	files, stats, err := FindBrandFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, stats, fmt.Errorf("scan failed: %w", err)
	}
	log.WithFields(map[string]any{
		"discovered": stats.FilesDiscovered,
		"skipped":    stats.FilesSkipped,
	}).Debug("brand files discovered")

	var (
		mu     sync.Mutex
		brands = make([]Brand, 0, len(files))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.concurrency())

	for _, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := loadBrand(path, config.Strict, log)

			mu.Lock()
			brands = append(brands, b)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	sort.Slice(brands, func(i, j int) bool { return brands[i].Source < brands[j].Source })
	return brands, stats, nil
}

func loadBrand(path string, strict bool, log *logger.Logger) Brand {
	b := Brand{Source: path}
	log = log.With("file", path)

	cfg, err := LoadBrandConfig(path)
	if err != nil {
		log.Error(err, "brand file could not be loaded")
		b.Err = err
		return b
	}
	b.Config = cfg

	if err := brandgen.Validate(cfg); err != nil {
		if strict {
			log.Error(err, "invalid brand file")
			b.Err = fmt.Errorf("%s: %w", path, err)
			return b
		}
		for _, fe := range brandgen.FieldErrors(cfg) {
			b.Warnings = append(b.Warnings, fmt.Sprintf("%s: %s", path, fe.Error()))
		}
		log.Warn("brand file has invalid fields, engine defaults apply")
	}

	b.Library = brandgen.Assemble(cfg)
	log.With("components", len(b.Library.Components)).Debug("library assembled")
	return b
}

// Generate is the main entry point
func Generate(ctx context.Context, config Config) (*GenerateResult, error) {
	log := config.Logger
	start := time.Now()

	// 1. Discover, load and assemble
	brands, stats, err := LoadBrands(ctx, config)
	if err != nil {
		return nil, err
	}
	result := &GenerateResult{Scan: stats}

	// 2. Claim output names in source order so duplicates resolve the same
	// way on every run
	type job struct {
		brand Brand
		path  string
	}
	var jobs []job
	claimed := make(map[string]string)

	for _, b := range brands {
		result.Warnings = append(result.Warnings, b.Warnings...)
		if b.Err != nil {
			result.Failed++
			result.Warnings = append(result.Warnings, b.Err.Error())
			continue
		}

		name := export.PackageName(b.Config.CompanyName)
		if config.Archive {
			name = export.ArchiveName(b.Config.CompanyName)
		}
		if prev, ok := claimed[name]; ok {
			result.Failed++
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: output %s already produced by %s", b.Source, name, prev))
			continue
		}
		claimed[name] = b.Source
		jobs = append(jobs, job{brand: b, path: filepath.Join(config.OutputDir, name)})
	}

	// 3. Export concurrently
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.concurrency())

	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := writeBrand(j.brand, j.path, config)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.With("file", j.brand.Source).Error(err, "export failed")
				result.Failed++
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", j.brand.Source, err))
				return nil
			}
			result.Outputs = append(result.Outputs, out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Outputs, func(i, j int) bool { return result.Outputs[i].Source < result.Outputs[j].Source })
	sort.Strings(result.Warnings)

	log.WithFields(map[string]any{
		"outputs":  len(result.Outputs),
		"failed":   result.Failed,
		"duration": time.Since(start).String(),
	}).Info("generation finished")

	if config.Strict && result.Failed > 0 {
		return result, fmt.Errorf("%d brand file(s) failed", result.Failed)
	}
	return result, nil
}

func writeBrand(b Brand, path string, config Config) (BrandOutput, error) {
	out := BrandOutput{Source: b.Source, Company: b.Config.CompanyName, Path: path}

	if !withinDir(config.OutputDir, path) {
		return out, fmt.Errorf("output %s escapes %s", path, config.OutputDir)
	}

	files, err := export.Files(b.Library, config.Export)
	if err != nil {
		return out, err
	}
	out.Files = len(files)

	if config.DryRun {
		return out, nil
	}

	if !config.Archive {
		if err := export.WriteDir(path, files); err != nil {
			return out, fmt.Errorf("write failed: %w", err)
		}
		return out, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return out, fmt.Errorf("create output dir: %w", err)
	}
	// #nosec G304 - path is built from the output dir flag
	f, err := os.Create(path)
	if err != nil {
		return out, fmt.Errorf("create archive: %w", err)
	}
	if err := export.WriteArchive(f, files); err != nil {
		_ = f.Close()
		return out, fmt.Errorf("write failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return out, fmt.Errorf("close archive: %w", err)
	}
	return out, nil
}

// withinDir reports whether path names an entry strictly inside dir.
func withinDir(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
