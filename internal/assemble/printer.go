// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package assemble

import (
	"fmt"
	"sort"
	"strings"

	"github.com/graphql-go/graphql"
)

// Print renders a schema as SDL with types and fields in sorted order.
// Introspection types and scalars are omitted.
func Print(schema graphql.Schema) string {
	typeMap := schema.TypeMap()

	names := make([]string, 0, len(typeMap))
	for name, t := range typeMap {
		if strings.HasPrefix(name, "__") {
			continue
		}
		if _, isScalar := t.(*graphql.Scalar); isScalar {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch t := typeMap[name].(type) {
		case *graphql.Object:
			printObject(&sb, t)
		case *graphql.InputObject:
			printInputObject(&sb, t)
		case *graphql.Enum:
			printEnum(&sb, t)
		}
	}
	return sb.String()
}

func printObject(sb *strings.Builder, obj *graphql.Object) {
	printDescription(sb, obj.Description(), "")
	fmt.Fprintf(sb, "type %s {\n", obj.Name())
	fields := obj.Fields()
	for _, name := range sortedFieldNames(fields) {
		f := fields[name]
		printDescription(sb, f.Description, "  ")
		fmt.Fprintf(sb, "  %s%s: %s\n", name, printArgs(f.Args), typeRef(f.Type))
	}
	sb.WriteString("}\n")
}

func printInputObject(sb *strings.Builder, obj *graphql.InputObject) {
	printDescription(sb, obj.Description(), "")
	fmt.Fprintf(sb, "input %s {\n", obj.Name())
	fields := obj.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f := fields[name]
		printDescription(sb, f.Description(), "  ")
		fmt.Fprintf(sb, "  %s: %s\n", name, typeRef(f.Type))
	}
	sb.WriteString("}\n")
}

func printEnum(sb *strings.Builder, enum *graphql.Enum) {
	printDescription(sb, enum.Description(), "")
	fmt.Fprintf(sb, "enum %s {\n", enum.Name())
	values := enum.Values()
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sb, "  %s\n", name)
	}
	sb.WriteString("}\n")
}

func printArgs(args []*graphql.Argument) string {
	if len(args) == 0 {
		return ""
	}
	sorted := make([]*graphql.Argument, len(args))
	copy(sorted, args)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })

	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = fmt.Sprintf("%s: %s", a.Name(), typeRef(a.Type))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// typeRef renders a type reference with list and non-null wrappers.
func typeRef(t graphql.Type) string {
	switch tt := t.(type) {
	case *graphql.NonNull:
		return typeRef(tt.OfType) + "!"
	case *graphql.List:
		return "[" + typeRef(tt.OfType) + "]"
	default:
		return t.Name()
	}
}

func printDescription(sb *strings.Builder, desc, indent string) {
	if desc == "" {
		return
	}
	fmt.Fprintf(sb, "%s\"\"\"%s\"\"\"\n", indent, desc)
}

func sortedFieldNames(fields graphql.FieldDefinitionMap) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
