package export

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/yacobolo/brandgen/internal/brandgen"
)

var funcs = template.FuncMap{
	"pascal": pascalCase,
	"quote":  jsSingleQuote,
}

var readmeTemplate = template.Must(template.New("README.md").Funcs(funcs).Parse(`# {{.Company}} Component Library

A React component library built with Tailwind CSS, designed specifically for {{.Company}}.

## Installation

` + "```bash" + `
pnpm add {{.Package}}
` + "```" + `

Or with npm:

` + "```bash" + `
npm install {{.Package}}
` + "```" + `

## Usage

` + "```jsx" + `
import { Button, Card, Input } from '{{.Package}}';

function App() {
  return (
    <Card>
      <h1>Welcome to {{.Company}}</h1>
      <Input placeholder="Enter your email" />
      <Button>Get Started</Button>
    </Card>
  );
}
` + "```" + `

## Brand Colors

- **Primary**: {{.Config.PrimaryColor}}
- **Secondary**: {{.Config.SecondaryColor}}
- **Accent**: {{.Config.AccentColor}}

## Typography

- **Font Family**: {{.Config.FontFamily}}

## Style

| Setting | Value |
|---------|-------|
| Border radius | {{.Config.BorderRadius}} |
| Spacing | {{.Config.Spacing}} |
| Buttons | {{.Config.ButtonStyle}} |
| Shadows | {{.Config.ShadowStyle}} |
| Personality | {{.Config.BrandPersonality}} |

## Components
{{range .Components}}
### {{.Name}}

{{.Description}}

**Variants:**
{{range .Variants}}
- ` + "`{{.Name}}`" + `{{if .Default}} (default){{end}}: {{.Description}}
{{- end}}
{{end}}
## Development

### Building

` + "```bash" + `
pnpm build
` + "```" + `

### Storybook

` + "```bash" + `
pnpm storybook
` + "```" + `

## License

MIT
`))

type readmeVariant struct {
	Name        string
	Description string
	Default     bool
}

type readmeComponent struct {
	Name        string
	Description string
	Variants    []readmeVariant
}

// Readme renders the package README for lib.
func Readme(lib *brandgen.ComponentLibrary) (string, error) {
	data := struct {
		Company    string
		Package    string
		Config     brandgen.BrandConfig
		Components []readmeComponent
	}{
		Company: lib.BrandConfig.CompanyName,
		Package: PackageName(lib.BrandConfig.CompanyName),
		Config:  lib.BrandConfig,
	}

	for _, t := range lib.Types() {
		c := lib.Components[t]
		vc := c.VariantConfig
		rc := readmeComponent{Name: c.Name, Description: c.Description}
		for _, name := range orderedKeys(vc.Order.Variants, vc.Variants.Variant) {
			desc := c.Variants[name].Description
			if desc == "" {
				desc = "Standard variant"
			}
			rc.Variants = append(rc.Variants, readmeVariant{
				Name:        name,
				Description: desc,
				Default:     name == vc.DefaultVariants.Variant,
			})
		}
		data.Components = append(data.Components, rc)
	}

	var buf bytes.Buffer
	if err := readmeTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render README.md: %w", err)
	}
	return buf.String(), nil
}

var storyTemplate = template.Must(template.New("story").Funcs(funcs).Parse(`import React from 'react';
import type { ComponentMeta, ComponentStory } from '@storybook/react';
import {{.Type}} from './{{.Type}}';

export default {
  title: {{quote .Title}},
  component: {{.Type}},
} as ComponentMeta<typeof {{.Type}}>;

const Template: ComponentStory<typeof {{.Type}}> = (args) => <{{.Type}} {...args} />;
{{range .Variants}}
export const {{pascal .}} = Template.bind({});
{{pascal .}}.args = {
  variant: {{quote .}},
{{- if $.Children}}
  children: {{quote $.Children}},
{{- end}}
};
{{end}}`))

func storyFile(componentType string, data brandgen.ComponentData) (string, error) {
	vc := data.VariantConfig
	children := ""
	if !voidElements[data.Element] {
		children = componentType
	}

	view := struct {
		Type     string
		Title    string
		Variants []string
		Children string
	}{
		Type:     componentType,
		Title:    string(data.Category) + "/" + componentType,
		Variants: orderedKeys(vc.Order.Variants, vc.Variants.Variant),
		Children: children,
	}

	var buf bytes.Buffer
	if err := storyTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render %s story: %w", componentType, err)
	}
	return buf.String(), nil
}
