package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yacobolo/brandgen/internal/brandgen"
)

type packageManifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Description      string            `json:"description"`
	Main             string            `json:"main"`
	Module           string            `json:"module"`
	Types            string            `json:"types"`
	Files            []string          `json:"files"`
	Scripts          map[string]string `json:"scripts"`
	PackageManager   string            `json:"packageManager"`
	Dependencies     map[string]string `json:"dependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
}

func packageJSON(cfg brandgen.BrandConfig, opts Options) (string, error) {
	manifest := packageManifest{
		Name:        PackageName(cfg.CompanyName),
		Version:     opts.Version,
		Description: "React component library for " + cfg.CompanyName,
		Main:        "dist/index.js",
		Module:      "dist/index.esm.js",
		Types:       "dist/index.d.ts",
		Files:       []string{"dist"},
		Scripts: map[string]string{
			"build":        "rollup -c",
			"install:deps": "pnpm install",
		},
		PackageManager: "pnpm@8.0.0",
		Dependencies: map[string]string{
			"class-variance-authority": "^0.7.0",
			"clsx":                     "^2.0.0",
		},
		PeerDependencies: map[string]string{
			"react":     ">=16.8.0",
			"react-dom": ">=16.8.0",
		},
		DevDependencies: map[string]string{
			"@rollup/plugin-commonjs":         "^22.0.0",
			"@rollup/plugin-node-resolve":     "^13.3.0",
			"@rollup/plugin-typescript":       "^8.3.2",
			"@types/react":                    "^18.0.0",
			"@types/react-dom":                "^18.0.0",
			"rollup":                          "^2.75.0",
			"rollup-plugin-peer-deps-external": "^2.2.4",
			"rollup-plugin-postcss":           "^4.0.2",
			"tailwindcss":                     "^3.3.0",
			"typescript":                      "^4.7.0",
		},
	}

	if opts.IncludeStorybook {
		manifest.Scripts["storybook"] = "start-storybook -p 6006"
		manifest.Scripts["build-storybook"] = "build-storybook"
		manifest.DevDependencies["@storybook/addon-essentials"] = "^6.5.0"
		manifest.DevDependencies["@storybook/react"] = "^6.5.0"
	}
	if opts.IncludeTests {
		manifest.Scripts["test"] = "jest"
		manifest.DevDependencies["@testing-library/react"] = "^13.4.0"
		manifest.DevDependencies["jest"] = "^29.0.0"
		manifest.DevDependencies["jest-environment-jsdom"] = "^29.0.0"
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render package.json: %w", err)
	}
	return string(out) + "\n", nil
}

type tsCompilerOptions struct {
	Target                           string   `json:"target"`
	Lib                              []string `json:"lib"`
	AllowJS                          bool     `json:"allowJs"`
	SkipLibCheck                     bool     `json:"skipLibCheck"`
	EsModuleInterop                  bool     `json:"esModuleInterop"`
	AllowSyntheticDefaultImports     bool     `json:"allowSyntheticDefaultImports"`
	Strict                           bool     `json:"strict"`
	ForceConsistentCasingInFileNames bool     `json:"forceConsistentCasingInFileNames"`
	Module                           string   `json:"module"`
	ModuleResolution                 string   `json:"moduleResolution"`
	ResolveJSONModule                bool     `json:"resolveJsonModule"`
	IsolatedModules                  bool     `json:"isolatedModules"`
	NoEmit                           bool     `json:"noEmit"`
	JSX                              string   `json:"jsx"`
	Declaration                      bool     `json:"declaration"`
	OutDir                           string   `json:"outDir"`
}

type tsConfig struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

func tsConfigJSON() (string, error) {
	cfg := tsConfig{
		CompilerOptions: tsCompilerOptions{
			Target:                           "es5",
			Lib:                              []string{"dom", "dom.iterable", "esnext"},
			AllowJS:                          true,
			SkipLibCheck:                     true,
			EsModuleInterop:                  true,
			AllowSyntheticDefaultImports:     true,
			Strict:                           true,
			ForceConsistentCasingInFileNames: true,
			Module:                           "esnext",
			ModuleResolution:                 "node",
			ResolveJSONModule:                true,
			IsolatedModules:                  true,
			NoEmit:                           true,
			JSX:                              "react-jsx",
			Declaration:                      true,
			OutDir:                           "dist",
		},
		Include: []string{"src"},
		Exclude: []string{"node_modules", "dist", "build"},
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render tsconfig.json: %w", err)
	}
	return string(out) + "\n", nil
}

// radiusRem is the rem value of the brand radius in the Tailwind theme.
func radiusRem(r brandgen.BorderRadius) string {
	switch r {
	case brandgen.RadiusSmall:
		return "0.25rem"
	case brandgen.RadiusLarge:
		return "0.75rem"
	default:
		return "0.5rem"
	}
}

func tailwindConfig(cfg brandgen.BrandConfig) string {
	var b strings.Builder

	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("  mode: 'jit',\n")
	b.WriteString("  content: [\n    \"./src/**/*.{js,jsx,ts,tsx}\",\n  ],\n")
	b.WriteString("  theme: {\n    extend: {\n")

	b.WriteString("      colors: {\n        brand: {\n")
	for _, prop := range brandgen.BrandCustomProperties(cfg) {
		key := strings.TrimPrefix(prop.Name, "--brand-")
		if strings.Contains(key, "-") {
			key = "'" + key + "'"
		}
		fmt.Fprintf(&b, "          %s: 'var(%s)',\n", key, prop.Name)
	}
	b.WriteString("        }\n      },\n")

	fmt.Fprintf(&b, "      fontFamily: {\n        brand: [%s, 'system-ui', 'sans-serif']\n      },\n", jsSingleQuote(cfg.FontFamily))
	fmt.Fprintf(&b, "      borderRadius: {\n        brand: '%s'\n      },\n", radiusRem(cfg.BorderRadius))

	b.WriteString(tailwindAnimations)
	b.WriteString("    },\n  },\n  plugins: [],\n}\n")
	return b.String()
}

// GlobalsCSS is the stylesheet that declares the brand custom properties,
// base typography and the animations used by the magic variants.
func GlobalsCSS(cfg brandgen.BrandConfig) string {
	var b strings.Builder

	b.WriteString("@tailwind base;\n@tailwind components;\n@tailwind utilities;\n\n")
	b.WriteString("@layer base {\n  :root {\n")
	fmt.Fprintf(&b, "    /* %s Brand Colors */\n", strings.ReplaceAll(cfg.CompanyName, "*/", "* /"))
	for _, prop := range brandgen.BrandCustomProperties(cfg) {
		fmt.Fprintf(&b, "    %s: %s;\n", prop.Name, prop.Value)
	}
	b.WriteString("  }\n}\n\n")

	b.WriteString("@layer base {\n  body {\n    margin: 0;\n")
	fmt.Fprintf(&b, "    font-family: %s, -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Oxygen',\n", jsSingleQuote(cfg.FontFamily))
	b.WriteString("      'Ubuntu', 'Cantarell', 'Fira Sans', 'Droid Sans', 'Helvetica Neue',\n      sans-serif;\n")
	b.WriteString("    -webkit-font-smoothing: antialiased;\n    -moz-osx-font-smoothing: grayscale;\n  }\n\n")
	b.WriteString("  code {\n    font-family: source-code-pro, Menlo, Monaco, Consolas, 'Courier New',\n      monospace;\n  }\n}\n")

	b.WriteString(magicAnimations)
	return b.String()
}

// jsSingleQuote quotes s for JavaScript and CSS single quoted strings.
func jsSingleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

const tailwindAnimations = `      animation: {
        'gradient-x': 'gradient-x 3s ease infinite',
        'gradient-y': 'gradient-y 3s ease infinite',
        'gradient-xy': 'gradient-xy 4s ease infinite',
        'shimmer': 'shimmer 2s ease-in-out infinite',
        'pulse-slow': 'pulse-slow 3s ease-in-out infinite',
        'spin-slow': 'spin-slow 8s linear infinite',
      },
      keyframes: {
        'gradient-x': {
          '0%, 100%': { 'background-position': '0% 50%' },
          '50%': { 'background-position': '100% 50%' },
        },
        'gradient-y': {
          '0%, 100%': { 'background-position': '50% 0%' },
          '50%': { 'background-position': '50% 100%' },
        },
        'gradient-xy': {
          '0%, 100%': { 'background-position': '0% 0%' },
          '25%': { 'background-position': '100% 0%' },
          '50%': { 'background-position': '100% 100%' },
          '75%': { 'background-position': '0% 100%' },
        },
        'shimmer': {
          '0%': { transform: 'translateX(-100%)' },
          '100%': { transform: 'translateX(100%)' },
        },
        'pulse-slow': {
          '0%, 100%': { opacity: '1' },
          '50%': { opacity: '0.8' },
        },
        'spin-slow': {
          from: { transform: 'rotate(0deg)' },
          to: { transform: 'rotate(360deg)' },
        },
      },
`

const magicAnimations = `
/* Magic Gradient Animations */
@keyframes gradient-x {
  0%, 100% { background-position: 0% 50%; }
  50% { background-position: 100% 50%; }
}

@keyframes gradient-y {
  0%, 100% { background-position: 50% 0%; }
  50% { background-position: 50% 100%; }
}

@keyframes gradient-xy {
  0%, 100% { background-position: 0% 0%; }
  25% { background-position: 100% 0%; }
  50% { background-position: 100% 100%; }
  75% { background-position: 0% 100%; }
}

@keyframes shimmer {
  0% { transform: translateX(-100%); }
  100% { transform: translateX(100%); }
}

@keyframes pulse-slow {
  0%, 100% { opacity: 1; }
  50% { opacity: 0.8; }
}

@keyframes spin-slow {
  from { transform: rotate(0deg); }
  to { transform: rotate(360deg); }
}

.animate-gradient-x { animation: gradient-x 3s ease infinite; }
.animate-gradient-y { animation: gradient-y 3s ease infinite; }
.animate-gradient-xy { animation: gradient-xy 4s ease infinite; }
.animate-shimmer { animation: shimmer 2s ease-in-out infinite; }
.animate-pulse-slow { animation: pulse-slow 3s ease-in-out infinite; }
.animate-spin-slow { animation: spin-slow 8s linear infinite; }
`

const rollupConfig = `import resolve from '@rollup/plugin-node-resolve';
import commonjs from '@rollup/plugin-commonjs';
import typescript from '@rollup/plugin-typescript';
import postcss from 'rollup-plugin-postcss';
import peerDepsExternal from 'rollup-plugin-peer-deps-external';

export default {
  input: 'src/index.ts',
  output: [
    {
      file: 'dist/index.js',
      format: 'cjs',
      sourcemap: true,
    },
    {
      file: 'dist/index.esm.js',
      format: 'esm',
      sourcemap: true,
    },
  ],
  plugins: [
    peerDepsExternal(),
    resolve(),
    commonjs(),
    typescript({ tsconfig: './tsconfig.json' }),
    postcss({
      config: {
        path: './postcss.config.js',
      },
      extensions: ['.css'],
      minimize: true,
      inject: {
        insertAt: 'top',
      },
    }),
  ],
};
`

const storybookConfig = `module.exports = {
  stories: ['../src/**/*.stories.@(js|jsx|ts|tsx)'],
  addons: [
    '@storybook/addon-essentials',
  ],
  framework: '@storybook/react',
  core: {
    builder: '@storybook/builder-webpack5',
  },
};
`
