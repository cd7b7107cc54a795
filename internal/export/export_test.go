package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/brandgen/internal/brandgen"
)

func acmeLibrary() *brandgen.ComponentLibrary {
	cfg := brandgen.DefaultBrandConfig()
	cfg.CompanyName = "Acme"
	return brandgen.Assemble(cfg)
}

func paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func fileContent(t *testing.T, files []File, path string) string {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return f.Content
		}
	}
	require.Failf(t, "file not exported", "%s", path)
	return ""
}

func TestFilesComplete(t *testing.T) {
	files, err := Files(acmeLibrary(), DefaultOptions())
	require.NoError(t, err)

	got := paths(files)
	assert.Equal(t, []string{
		"package.json",
		"README.md",
		"tailwind.config.js",
		"rollup.config.js",
		"tsconfig.json",
		"src/index.ts",
		"src/types.ts",
		"src/variants.ts",
		"src/globals.css",
		"src/components/Button/Button.tsx",
		"src/components/Button/Button.stories.tsx",
	}, got[:11])
	assert.Len(t, files, 9+2*12+1)
	assert.Equal(t, ".storybook/main.js", got[len(got)-1])
	assert.NotContains(t, got, "src/components/Button/Button.test.tsx")
}

func TestFilesOptions(t *testing.T) {
	t.Run("components only", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Format = FormatComponentsOnly
		files, err := Files(acmeLibrary(), opts)
		require.NoError(t, err)

		for _, p := range paths(files) {
			assert.True(t, strings.HasPrefix(p, "src/"), p)
		}
	})

	t.Run("tests without storybook", func(t *testing.T) {
		opts := Options{Format: FormatComplete, IncludeTests: true}
		files, err := Files(acmeLibrary(), opts)
		require.NoError(t, err)

		got := paths(files)
		assert.Len(t, files, 9+2*12)
		assert.Contains(t, got, "src/components/Switch/Switch.test.tsx")
		assert.NotContains(t, got, ".storybook/main.js")

		var manifest map[string]any
		require.NoError(t, json.Unmarshal([]byte(fileContent(t, files, "package.json")), &manifest))
		scripts := manifest["scripts"].(map[string]any)
		assert.Equal(t, "jest", scripts["test"])
		assert.NotContains(t, scripts, "storybook")
	})

	t.Run("version", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Version = "v2.1.0"
		files, err := Files(acmeLibrary(), opts)
		require.NoError(t, err)

		var manifest map[string]any
		require.NoError(t, json.Unmarshal([]byte(fileContent(t, files, "package.json")), &manifest))
		assert.Equal(t, "acme-component-library", manifest["name"])
		assert.Equal(t, "2.1.0", manifest["version"])
		assert.Equal(t, "React component library for Acme", manifest["description"])
	})

	t.Run("generated at", func(t *testing.T) {
		opts := DefaultOptions()
		opts.GeneratedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		files, err := Files(acmeLibrary(), opts)
		require.NoError(t, err)
		assert.Contains(t, fileContent(t, files, "src/index.ts"), "// Generated on 2026-03-01T12:00:00Z")
	})
}

func TestFilesErrors(t *testing.T) {
	tests := []struct {
		name string
		lib  *brandgen.ComponentLibrary
		opts Options
		want string
	}{
		{name: "nil library", opts: DefaultOptions(), want: "nil library"},
		{name: "unknown format", lib: acmeLibrary(), opts: Options{Format: "tarball"}, want: `unknown format "tarball"`},
		{name: "bad version", lib: acmeLibrary(), opts: Options{Version: "1.0"}, want: `invalid package version "1.0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Files(tt.lib, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	v, err := NormalizeVersion("")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)

	v, err = NormalizeVersion("v1.2.3-beta.1")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-beta.1", v)

	_, err = NormalizeVersion("latest")
	assert.Error(t, err)
}

func TestGlobalsCSSPassesStylesheetLint(t *testing.T) {
	for _, cfg := range []brandgen.BrandConfig{
		brandgen.DefaultBrandConfig(),
		{CompanyName: "Dark */ Corp", PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", AccentColor: "#ABCDEF", FontFamily: "Open Sans"},
	} {
		css := GlobalsCSS(cfg)
		issues := brandgen.LintStylesheet(brandgen.Stylesheet{Filename: "src/globals.css", Content: css}, cfg)
		assert.Empty(t, issues, cfg.CompanyName)
	}

	css := GlobalsCSS(brandgen.DefaultBrandConfig())
	assert.Contains(t, css, "--brand-primary-hover: #0042b6;")
	assert.Contains(t, css, "font-family: 'Inter', -apple-system")
	assert.Contains(t, css, "@keyframes shimmer")
	assert.Contains(t, css, ".animate-spin-slow")
}

func TestComponentFile(t *testing.T) {
	files, err := Files(acmeLibrary(), DefaultOptions())
	require.NoError(t, err)

	button := fileContent(t, files, "src/components/Button/Button.tsx")
	assert.Contains(t, button, "export const buttonVariants = cva(\"inline-flex items-center justify-center font-['Inter']")
	assert.Contains(t, button, "      primary: \"rounded-lg bg-[#3B82F6] text-white shadow-sm hover:bg-[#2269dd] focus:ring-[#3B82F6]\",\n")
	assert.Contains(t, button, `      "magic-dark": "`)
	assert.Contains(t, button, "  defaultVariants: {\n    variant: \"primary\",\n    size: \"md\",\n  },")
	assert.Contains(t, button, "<button className={clsx(buttonVariants({ variant, size }), className)} {...props}>")
	assert.Contains(t, button, "export default Button;")

	input := fileContent(t, files, "src/components/Input/Input.tsx")
	assert.Contains(t, input, "<input className={clsx(inputVariants({ variant, size }), className)} {...props} />")
	assert.NotContains(t, input, "children")

	card := fileContent(t, files, "src/components/Card/Card.tsx")
	assert.Contains(t, card, "    padding: {\n      none: \"p-0\",")
	assert.Contains(t, card, "variant: \"default\",\n    padding: \"md\",")

	picker := fileContent(t, files, "src/components/DatePicker/DatePicker.tsx")
	assert.Contains(t, picker, "export const datePickerVariants = cva(")
}

func TestTypesAndVariantsFiles(t *testing.T) {
	files, err := Files(acmeLibrary(), DefaultOptions())
	require.NoError(t, err)

	types := fileContent(t, files, "src/types.ts")
	assert.Contains(t, types, "export interface ButtonVariants {\n  variant?: 'primary' | 'secondary' | 'outline' | 'ghost' | 'destructive' | 'magic' | 'magic-dark' | 'magic-rainbow';\n  size?: 'sm' | 'md' | 'lg' | 'xl';\n}")
	assert.Contains(t, types, "Omit<ComponentPropsWithoutRef<'button'>, 'variant' | 'size' | 'onClick' | 'disabled' | 'className' | 'children'>")
	assert.Contains(t, types, "  /** Click handler */\n  onClick?: (...args: any[]) => void;")
	assert.Contains(t, types, "  padding?: 'none' | 'sm' | 'md' | 'lg';")

	variants := fileContent(t, files, "src/variants.ts")
	assert.Contains(t, variants, `    padding: ["none", "sm", "md", "lg"],`)
	assert.Contains(t, variants, "export const getCardPadding = () => COMPONENT_VARIANTS.Card.padding;")
	assert.Contains(t, variants, "export const getButtonSizes = () => COMPONENT_VARIANTS.Button.size;")
	assert.Contains(t, variants, "export const isValidButtonVariant = ")

	index := fileContent(t, files, "src/index.ts")
	assert.True(t, strings.HasPrefix(index, "// Acme Component Library\n\n"))
	assert.Contains(t, index, "export { default as Tabs, tabsVariants } from './components/Tabs/Tabs';")
}

func TestExportFollowsRenamedVariants(t *testing.T) {
	cfg := brandgen.DefaultBrandConfig()
	cfg.CompanyName = "Neon"
	cfg.BrandPersonality = brandgen.PersonalityMagical

	files, err := Files(brandgen.Assemble(cfg), DefaultOptions())
	require.NoError(t, err)

	button := fileContent(t, files, "src/components/Button/Button.tsx")
	assert.Contains(t, button, `"magic-sparkle": "`)
	assert.NotContains(t, button, `      magic: "`)

	story := fileContent(t, files, "src/components/Button/Button.stories.tsx")
	assert.Contains(t, story, "export const MagicSparkle = Template.bind({});")
	assert.Contains(t, story, "title: 'Interactive/Button',")
}

func TestReadme(t *testing.T) {
	readme, err := Readme(acmeLibrary())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(readme, "# Acme Component Library\n"))
	assert.Contains(t, readme, "pnpm add acme-component-library")
	assert.Contains(t, readme, "- **Primary**: #3B82F6")
	assert.Contains(t, readme, "### Button\n\nInteractive button components with various styles and states\n\n**Variants:**\n\n- `primary` (default): Solid brand color call to action\n- `secondary`:")
}

func TestTailwindConfig(t *testing.T) {
	cfg := brandgen.DefaultBrandConfig()
	cfg.BorderRadius = brandgen.RadiusLarge
	out := tailwindConfig(cfg)

	assert.Contains(t, out, "          primary: 'var(--brand-primary)',\n")
	assert.Contains(t, out, "          'accent-text': 'var(--brand-accent-text)',\n")
	assert.Contains(t, out, "brand: ['Inter', 'system-ui', 'sans-serif']")
	assert.Contains(t, out, "brand: '0.75rem'")
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "acme-corp", Slug("Acme Corp"))
	assert.Equal(t, "big-co", Slug("  Big \t  Co "))
	assert.Equal(t, "brand", Slug(""))
	assert.Equal(t, "acme-component-library", PackageName("Acme"))

	tests := []struct {
		company string
		want    string
	}{
		{"../../Escaped Co", "escaped-co"},
		{"/etc/passwd", "etc-passwd"},
		{`Bob's "Best" Bikes`, "bob-s-best-bikes"},
		{`..\windows\Co`, "windows-co"},
		{"Dark */ Corp", "dark-corp"},
		{"--Acme--", "acme"},
		{"../..", "brand"},
	}
	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			slug := Slug(tt.company)
			assert.Equal(t, tt.want, slug)
			assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, slug)
		})
	}
	assert.Equal(t, "acme-corp-component-library", PackageName("Acme Corp"))
	assert.Equal(t, "acme-corp-component-library.zip", ArchiveName("Acme Corp"))
}

func TestWriteArchive(t *testing.T) {
	files, err := Files(acmeLibrary(), DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, files))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, len(files))

	for i, zf := range zr.File {
		assert.Equal(t, files[i].Path, zf.Name)
	}

	rc, err := zr.File[8].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, fileContent(t, files, "src/globals.css"), string(content))
}

func TestWriteArchiveRejectsEscapingPaths(t *testing.T) {
	for _, p := range []string{"../evil.js", "/etc/passwd", ".", ""} {
		err := WriteArchive(io.Discard, []File{{Path: p}})
		assert.Error(t, err, p)
	}
}

func TestWriteDir(t *testing.T) {
	dir := t.TempDir()
	files := []File{
		{Path: "package.json", Content: "{}\n"},
		{Path: "src/components/Button/Button.tsx", Content: "export default Button;\n"},
	}
	require.NoError(t, WriteDir(dir, files))

	got, err := os.ReadFile(filepath.Join(dir, "src", "components", "Button", "Button.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export default Button;\n", string(got))
}
