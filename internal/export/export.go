// Package export turns a generated component library into an installable
// React + Tailwind package: TypeScript components built on
// class-variance-authority, brand CSS custom properties and build configs.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/yacobolo/brandgen/internal/brandgen"
)

// Format selects which files an export contains.
type Format string

// Export formats
const (
	// FormatComplete is a package ready to publish.
	FormatComplete Format = "complete"
	// FormatComponentsOnly emits only the src/ tree.
	FormatComponentsOnly Format = "components-only"
)

// DefaultVersion is the package version used when Options.Version is empty.
const DefaultVersion = "1.0.0"

// Options controls an export.
type Options struct {
	Format           Format
	IncludeStorybook bool
	IncludeTests     bool
	Version          string    // semver, "v" prefix allowed
	GeneratedAt      time.Time // stamped into src/index.ts when set
}

// DefaultOptions matches the defaults of the export dialog.
func DefaultOptions() Options {
	return Options{
		Format:           FormatComplete,
		IncludeStorybook: true,
		Version:          DefaultVersion,
	}
}

// File is one generated file. Path is slash separated and relative to the
// package root.
type File struct {
	Path    string
	Content string
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases company and collapses every run of characters outside
// [a-z0-9] into a single dash. The result is safe as a file name and as an
// npm package name.
func Slug(company string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(company), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "brand"
	}
	return slug
}

// PackageName is the npm package name for company.
func PackageName(company string) string {
	return Slug(company) + "-component-library"
}

// ArchiveName is the zip file name for company.
func ArchiveName(company string) string {
	return PackageName(company) + ".zip"
}

// NormalizeVersion validates v as a strict semantic version and returns it
// without a "v" prefix. Empty means DefaultVersion.
func NormalizeVersion(v string) (string, error) {
	if v == "" {
		return DefaultVersion, nil
	}
	sv, err := semver.StrictNewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid package version %q: %w", v, err)
	}
	return sv.String(), nil
}

// Files renders every file of the exported package, in a fixed order.
func Files(lib *brandgen.ComponentLibrary, opts Options) ([]File, error) {
	if lib == nil {
		return nil, fmt.Errorf("export: nil library")
	}

	switch opts.Format {
	case "":
		opts.Format = FormatComplete
	case FormatComplete, FormatComponentsOnly:
	default:
		return nil, fmt.Errorf("export: unknown format %q (want %q or %q)", opts.Format, FormatComplete, FormatComponentsOnly)
	}

	version, err := NormalizeVersion(opts.Version)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	opts.Version = version

	var files []File
	add := func(path, content string) {
		files = append(files, File{Path: path, Content: content})
	}

	if opts.Format == FormatComplete {
		pkg, err := packageJSON(lib.BrandConfig, opts)
		if err != nil {
			return nil, err
		}
		add("package.json", pkg)

		readme, err := Readme(lib)
		if err != nil {
			return nil, err
		}
		add("README.md", readme)
		add("tailwind.config.js", tailwindConfig(lib.BrandConfig))
		add("rollup.config.js", rollupConfig)

		tsconfig, err := tsConfigJSON()
		if err != nil {
			return nil, err
		}
		add("tsconfig.json", tsconfig)
	}

	add("src/index.ts", indexFile(lib, opts))
	add("src/types.ts", typesFile(lib))
	add("src/variants.ts", variantsFile(lib))
	add("src/globals.css", GlobalsCSS(lib.BrandConfig))

	for _, t := range lib.Types() {
		data := lib.Components[t]
		dir := "src/components/" + t + "/"

		add(dir+t+".tsx", componentFile(t, data))
		if opts.IncludeStorybook {
			story, err := storyFile(t, data)
			if err != nil {
				return nil, err
			}
			add(dir+t+".stories.tsx", story)
		}
		if opts.IncludeTests {
			add(dir+t+".test.tsx", testFile(t, data))
		}
	}

	if opts.IncludeStorybook && opts.Format == FormatComplete {
		add(".storybook/main.js", storybookConfig)
	}

	return files, nil
}
