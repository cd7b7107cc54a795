package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/brandgen"
	engine "github.com/yacobolo/brandgen/internal/brandgen"
	"github.com/yacobolo/brandgen/internal/export"
)

// resetFlags puts every flag of the command tree back to its default so
// tests can share rootCmd.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI in a scratch working directory.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return stdout.String(), err
}

func brandDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := brandgen.DefaultBrandConfig()
	cfg.CompanyName = "Acme"
	require.NoError(t, writeBrandFile(filepath.Join(dir, "acme.brand.yaml"), cfg, false))
	return dir
}

func TestGenerateCommand(t *testing.T) {
	dir := brandDir(t)

	out, err := execute(t, dir, "generate", "--output-dir", "dist")
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 1 package(s) in dist")
	assert.Contains(t, out, "Brand files scanned: 1")
	assert.Contains(t, out, "(34 files)")
	assert.FileExists(t, filepath.Join(dir, "dist", "acme-component-library.zip"))
}

func TestGenerateCommandDirectoryAndDryRun(t *testing.T) {
	dir := brandDir(t)

	out, err := execute(t, dir, "gen", "--archive=false", "--dry-run", "--tests")
	require.NoError(t, err)
	assert.Contains(t, out, "Would generate 1 package(s) in dist")
	assert.Contains(t, out, "(46 files)")
	assert.NoDirExists(t, filepath.Join(dir, "dist"))

	_, err = execute(t, dir, "generate", "--archive=false", "--format", "components-only")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "dist", "acme-component-library", "src", "index.ts"))
	assert.NoFileExists(t, filepath.Join(dir, "dist", "acme-component-library", "package.json"))
}

func TestGenerateCommandReadsConfigFile(t *testing.T) {
	dir := brandDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".brandgen.yaml"),
		[]byte("generate:\n  output-dir: packages\n  dry-run: true\n"), 0o644))

	out, err := execute(t, dir, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Would generate 1 package(s) in packages")

	// Flags win over the file
	out, err = execute(t, dir, "generate", "--output-dir", "flagged")
	require.NoError(t, err)
	assert.Contains(t, out, "in flagged")
}

func TestGenerateCommandStrict(t *testing.T) {
	dir := brandDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.brand.yaml"), []byte("companyName: Bad\nspacing: huge\n"), 0o644))

	out, err := execute(t, dir, "generate", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would generate 2 package(s)")
	assert.Contains(t, out, "Warning: ")

	_, err = execute(t, dir, "generate", "--dry-run", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 brand file(s) failed")
}

func TestRootRunsGenerate(t *testing.T) {
	dir := brandDir(t)

	out, err := execute(t, dir, "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, filepath.Join(dir, "dist", "acme-component-library.zip"))
}

func TestLintCommand(t *testing.T) {
	dir := brandDir(t)

	out, err := execute(t, dir, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "0 issues in 1 brand file.")

	out, err = execute(t, dir, "lint", "--output-format", "json")
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
}

func TestLintCommandStrictLoading(t *testing.T) {
	dir := brandDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "odd.brand.yaml"), []byte("companyName: Odd\nshadowStyle: huge\n"), 0o644))

	sourcesLinted := func(out string) int {
		var report struct {
			Summary struct {
				SourcesLinted int `json:"sources_linted"`
			} `json:"summary"`
			Warnings []string `json:"warnings"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Contains(t, strings.Join(report.Warnings, "\n"), "shadowStyle")
		return report.Summary.SourcesLinted
	}

	out, err := execute(t, dir, "lint", "--output-format", "json")
	require.NoError(t, err)
	assert.Equal(t, 2, sourcesLinted(out))

	out, err = execute(t, dir, "lint", "--output-format", "json", "--strict")
	var exit *exitError
	require.True(t, errors.As(err, &exit))
	assert.Equal(t, 1, sourcesLinted(out))
}

func TestLintCommandStylesheet(t *testing.T) {
	dir := brandDir(t)

	stale := brandgen.DefaultBrandConfig()
	stale.PrimaryColor = "#FF0000"
	writeCSS := func(content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "globals.css"), []byte(content), 0o644))
	}

	t.Run("matching", func(t *testing.T) {
		writeCSS(export.GlobalsCSS(brandgen.DefaultBrandConfig()))
		_, err := execute(t, dir, "lint", "--stylesheet", "globals.css", "--strict")
		require.NoError(t, err)
	})

	t.Run("stale colors warn", func(t *testing.T) {
		writeCSS(export.GlobalsCSS(stale))
		out, err := execute(t, dir, "lint", "--stylesheet", "globals.css")
		require.NoError(t, err)
		assert.Contains(t, out, "globals.css:")

		_, err = execute(t, dir, "lint", "--stylesheet", "globals.css", "--strict")
		var exit *exitError
		require.True(t, errors.As(err, &exit))
		assert.Equal(t, 1, exit.code)
	})

	t.Run("missing properties fail", func(t *testing.T) {
		writeCSS("body { margin: 0; }\n")
		_, err := execute(t, dir, "lint", "--stylesheet", "globals.css", "--quiet")
		var exit *exitError
		require.True(t, errors.As(err, &exit))
	})

	t.Run("unreadable stylesheet", func(t *testing.T) {
		_, err := execute(t, dir, "lint", "--stylesheet", "missing.css")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lint failed")
	})
}

func TestPreviewCommand(t *testing.T) {
	dir := brandDir(t)

	out, err := execute(t, dir, "preview", "acme.brand.yaml", "--component", "Button")
	require.NoError(t, err)
	assert.Contains(t, out, "Acme component library")
	assert.Contains(t, out, "Button")
	assert.NotContains(t, out, "DatePicker")

	out, err = execute(t, dir, "preview", "acme.brand.yaml", "--readme")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Acme Component Library\n"))

	_, err = execute(t, dir, "preview", "missing.brand.yaml")
	require.Error(t, err)

	_, err = execute(t, dir, "preview")
	require.Error(t, err)
}

func TestAssembleCommand(t *testing.T) {
	dir := brandDir(t)

	out, err := execute(t, dir, "assemble", "acme.brand.yaml")
	require.NoError(t, err)
	var lib engine.ComponentLibrary
	require.NoError(t, json.Unmarshal([]byte(out), &lib))
	assert.Len(t, lib.Components, 12)
	assert.Equal(t, "Acme", lib.BrandConfig.CompanyName)

	out, err = execute(t, dir, "assemble", "acme.brand.yaml", "-o", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "components")
	assert.Contains(t, doc, "brandConfig")

	_, err = execute(t, dir, "assemble", "acme.brand.yaml", "-o", "toml")
	assert.ErrorContains(t, err, `unknown output format "toml"`)
}

func TestAssembleCommandStrict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "odd.brand.yaml"), []byte("companyName: Odd\nshadowStyle: huge\n"), 0o644))

	out, err := execute(t, dir, "assemble", "odd.brand.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `"shadowStyle": "huge"`)

	_, err = execute(t, dir, "assemble", "odd.brand.yaml", "--strict")
	assert.ErrorContains(t, err, "shadowStyle")
}

func TestBrandFileRoundTrip(t *testing.T) {
	answers := answersFrom(brandgen.DefaultBrandConfig())
	answers.CompanyName = "  Globex  "
	answers.PrimaryColor = "#ff00aa"
	answers.Personality = "futuristic"

	cfg := answers.config()
	assert.Equal(t, "Globex", cfg.CompanyName)
	assert.Equal(t, "#FF00AA", cfg.PrimaryColor)
	assert.Equal(t, engine.PersonalityFuturistic, cfg.BrandPersonality)
	require.NoError(t, engine.Validate(cfg))

	data, err := marshalBrandFile(cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Globex brand\n"))
	assert.Contains(t, string(data), `primaryColor: '#FF00AA'`)

	path := filepath.Join(t.TempDir(), "globex.brand.yaml")
	require.NoError(t, writeBrandFile(path, cfg, false))
	loaded, err := brandgen.LoadBrandConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	err = writeBrandFile(path, cfg, false)
	assert.ErrorContains(t, err, "already exists")
	assert.NoError(t, writeBrandFile(path, cfg, true))
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateCompany("Acme"))
	assert.Error(t, validateCompany("   "))
	assert.NoError(t, validateColor("#3B82F6"))
	assert.Error(t, validateColor("3B82F6"))
	assert.Error(t, validateColor("#3B82F"))

	assert.NotNil(t, brandForm(answersFrom(brandgen.DefaultBrandConfig())))
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "init", "--example")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .brandgen.yaml")
	assert.Contains(t, out, "Created example.brand.yaml")

	data, err := os.ReadFile(filepath.Join(dir, ".brandgen.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "lint:")

	cfg, err := brandgen.LoadBrandConfig(filepath.Join(dir, "example.brand.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Example", cfg.CompanyName)

	// The written config drives the next run
	out, err = execute(t, dir, "generate", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would generate 1 package(s) in dist")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".brandgen.yaml"), []byte("verbose: false\n"), 0o644))

	_, err := execute(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, dir, "init", "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, ".brandgen.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# brandgen configuration")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "brandgen dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "brandgen")

	_, err = execute(t, t.TempDir(), "completion", "tcsh")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, t.TempDir(), "version", "--log-level", "loud")
	assert.Error(t, err)
}
