package export

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/yacobolo/brandgen/internal/brandgen"
)

// voidElements never take children.
var voidElements = map[string]bool{"input": true}

// axis is one cva variant axis of an exported component.
type axis struct {
	Name    string // prop name: "variant", "size" or "padding"
	Keys    []string
	Classes map[string]string
	Default string
}

// SizeAxisName is the prop that selects the size axis of componentType.
// Cards are sized by padding.
func SizeAxisName(componentType string) string {
	if componentType == "Card" {
		return "padding"
	}
	return "size"
}

func axesOf(componentType string, vc brandgen.VariantConfig) []axis {
	axes := []axis{{
		Name:    "variant",
		Keys:    orderedKeys(vc.Order.Variants, vc.Variants.Variant),
		Classes: vc.Variants.Variant,
		Default: vc.DefaultVariants.Variant,
	}}
	if vc.Variants.Size != nil {
		axes = append(axes, axis{
			Name:    SizeAxisName(componentType),
			Keys:    orderedKeys(vc.Order.Sizes, vc.Variants.Size),
			Classes: vc.Variants.Size,
			Default: vc.DefaultVariants.Size,
		})
	}
	return axes
}

// orderedKeys prefers the recorded order and falls back to sorted keys for
// libraries that were decoded from JSON or YAML.
func orderedKeys(order []string, m map[string]string) []string {
	if len(order) == len(m) {
		return order
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsKey renders an object key, quoting it when it is not an identifier.
func jsKey(name string) string {
	if jsIdentifier.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}

// lowerFirst turns "DatePicker" into "datePicker".
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// pascalCase turns "magic-dark" into "MagicDark".
func pascalCase(s string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' || r == ' ' }) {
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func variantsVar(componentType string) string {
	return lowerFirst(componentType) + "Variants"
}

func componentFile(componentType string, data brandgen.ComponentData) string {
	axes := axesOf(componentType, data.VariantConfig)
	name := variantsVar(componentType)

	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import { cva } from 'class-variance-authority';\n")
	b.WriteString("import { clsx } from 'clsx';\n")
	fmt.Fprintf(&b, "import type { %sProps } from '../../types';\n\n", componentType)

	fmt.Fprintf(&b, "// %s\n", data.Description)
	fmt.Fprintf(&b, "export const %s = cva(%s, {\n", name, strconv.Quote(data.VariantConfig.BaseClasses))
	b.WriteString("  variants: {\n")
	for _, a := range axes {
		fmt.Fprintf(&b, "    %s: {\n", a.Name)
		for _, key := range a.Keys {
			fmt.Fprintf(&b, "      %s: %s,\n", jsKey(key), strconv.Quote(a.Classes[key]))
		}
		b.WriteString("    },\n")
	}
	b.WriteString("  },\n")
	b.WriteString("  defaultVariants: {\n")
	for _, a := range axes {
		if a.Default != "" {
			fmt.Fprintf(&b, "    %s: %s,\n", a.Name, strconv.Quote(a.Default))
		}
	}
	b.WriteString("  },\n});\n\n")

	names := make([]string, len(axes))
	for i, a := range axes {
		names[i] = a.Name
	}
	axisArgs := strings.Join(names, ", ")

	element := data.Element
	if element == "" {
		element = "div"
	}

	params := axisArgs + ", className, "
	if !voidElements[element] {
		params += "children, "
	}
	fmt.Fprintf(&b, "const %s = ({ %s...props }: %sProps) => (\n", componentType, params, componentType)
	if voidElements[element] {
		fmt.Fprintf(&b, "  <%s className={clsx(%s({ %s }), className)} {...props} />\n", element, name, axisArgs)
	} else {
		fmt.Fprintf(&b, "  <%s className={clsx(%s({ %s }), className)} {...props}>\n", element, name, axisArgs)
		b.WriteString("    {children}\n")
		fmt.Fprintf(&b, "  </%s>\n", element)
	}
	b.WriteString(");\n\n")
	fmt.Fprintf(&b, "export default %s;\n", componentType)

	return b.String()
}

func indexFile(lib *brandgen.ComponentLibrary, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s Component Library\n", lib.BrandConfig.CompanyName)
	if !opts.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "// Generated on %s\n", opts.GeneratedAt.UTC().Format(time.RFC3339))
	}
	b.WriteString("\nimport './globals.css';\n\n")

	for _, t := range lib.Types() {
		fmt.Fprintf(&b, "export { default as %s, %s } from './components/%s/%s';\n", t, variantsVar(t), t, t)
	}
	b.WriteString("\nexport * from './types';\nexport * from './variants';\n")
	return b.String()
}

// tsType maps catalog prop types to TypeScript.
func tsType(propType string) string {
	switch propType {
	case "string", "boolean", "number":
		return propType
	case "function":
		return "(...args: any[]) => void"
	case "ReactNode":
		return "ReactNode"
	case "array":
		return "any[]"
	default:
		return "unknown"
	}
}

// componentProps returns the props documented for a component, minus the
// ones every component already has.
func componentProps(data brandgen.ComponentData) []brandgen.Prop {
	meta, ok := data.Variants[data.VariantConfig.DefaultVariants.Variant]
	if !ok {
		return nil
	}
	var props []brandgen.Prop
	for _, p := range meta.Props {
		switch p.Name {
		case "className", "children", "variant", "size", "padding":
			continue
		}
		props = append(props, p)
	}
	return props
}

func typesFile(lib *brandgen.ComponentLibrary) string {
	var b strings.Builder
	b.WriteString("import type { ComponentPropsWithoutRef, ReactNode } from 'react';\n\n")
	b.WriteString("export interface BaseProps {\n  className?: string;\n  children?: ReactNode;\n}\n")

	for _, t := range lib.Types() {
		data := lib.Components[t]
		axes := axesOf(t, data.VariantConfig)

		fmt.Fprintf(&b, "\nexport interface %sVariants {\n", t)
		for _, a := range axes {
			quoted := make([]string, len(a.Keys))
			for i, k := range a.Keys {
				quoted[i] = "'" + k + "'"
			}
			fmt.Fprintf(&b, "  %s?: %s;\n", a.Name, strings.Join(quoted, " | "))
		}
		b.WriteString("}\n")

		props := componentProps(data)
		omitted := make([]string, 0, len(axes)+len(props))
		for _, a := range axes {
			omitted = append(omitted, "'"+a.Name+"'")
		}
		for _, p := range props {
			omitted = append(omitted, "'"+p.Name+"'")
		}

		element := data.Element
		if element == "" {
			element = "div"
		}
		fmt.Fprintf(&b, "\nexport interface %sProps\n  extends BaseProps,\n    %sVariants,\n    Omit<ComponentPropsWithoutRef<'%s'>, %s> {\n",
			t, t, element, strings.Join(append(omitted, "'className'", "'children'"), " | "))
		for _, p := range props {
			fmt.Fprintf(&b, "  /** %s */\n  %s?: %s;\n", p.Description, p.Name, tsType(p.Type))
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func variantsFile(lib *brandgen.ComponentLibrary) string {
	var b strings.Builder
	b.WriteString("// Component variant constants for runtime validation and tooling.\n\n")
	b.WriteString("import type {\n")
	for _, t := range lib.Types() {
		fmt.Fprintf(&b, "  %sVariants,\n", t)
	}
	b.WriteString("} from './types';\n\n")

	b.WriteString("export const COMPONENT_VARIANTS = {\n")
	for _, t := range lib.Types() {
		fmt.Fprintf(&b, "  %s: {\n", t)
		for _, a := range axesOf(t, lib.Components[t].VariantConfig) {
			quoted := make([]string, len(a.Keys))
			for i, k := range a.Keys {
				quoted[i] = strconv.Quote(k)
			}
			fmt.Fprintf(&b, "    %s: [%s],\n", a.Name, strings.Join(quoted, ", "))
		}
		b.WriteString("  },\n")
	}
	b.WriteString("} as const;\n")

	for _, t := range lib.Types() {
		b.WriteString("\n")
		for _, a := range axesOf(t, lib.Components[t].VariantConfig) {
			getter := "get" + t + pascalCase(a.Name) + "s"
			if a.Name == "padding" {
				getter = "get" + t + "Padding"
			}
			fmt.Fprintf(&b, "export const %s = () => COMPONENT_VARIANTS.%s.%s;\n", getter, t, a.Name)
			fmt.Fprintf(&b, "export const isValid%s%s = (value: string): value is NonNullable<%sVariants['%s']> =>\n",
				t, pascalCase(a.Name), t, a.Name)
			fmt.Fprintf(&b, "  (COMPONENT_VARIANTS.%s.%s as readonly string[]).includes(value);\n", t, a.Name)
		}
	}
	return b.String()
}

func testFile(componentType string, data brandgen.ComponentData) string {
	keys := orderedKeys(data.VariantConfig.Order.Variants, data.VariantConfig.Variants.Variant)
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}

	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import { render } from '@testing-library/react';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n\n", componentType, componentType)
	fmt.Fprintf(&b, "describe('%s', () => {\n", componentType)
	b.WriteString("  it('renders with the default variant', () => {\n")
	fmt.Fprintf(&b, "    render(<%s />);\n", componentType)
	b.WriteString("  });\n\n")
	fmt.Fprintf(&b, "  it.each([%s])('renders the %%s variant', (variant) => {\n", strings.Join(quoted, ", "))
	fmt.Fprintf(&b, "    render(<%s variant={variant as any} />);\n", componentType)
	b.WriteString("  });\n});\n")
	return b.String()
}
