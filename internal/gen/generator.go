package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"text/template"

	"csv-mapper/internal/analyze"
	"csv-mapper/internal/common"
	"csv-mapper/internal/diagnostic"
	"csv-mapper/internal/match"
	"csv-mapper/primitive"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the file generated in each package.
	Filename string
	// RuntimeModule is the import path prefix of the primitive and schema packages.
	RuntimeModule string
	// OutputDir, when set, receives unformatted output if go/format fails.
	OutputDir string
	// GenerateComments enables doc comments on the generated variables.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:         "csvfields_gen.go",
		RuntimeModule:    "csv-mapper",
		GenerateComments: true,
	}
}

// Generator generates field tables from an analyzed type graph.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph
	diags  diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "csvfields_gen.go").
	Filename string
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// Diagnostics returns the problems found by the last Generate call.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// Generate emits the field tables of the named struct types of pkgPath. With no type
// names every exported struct of the package is generated.
func (g *Generator) Generate(graph *analyze.TypeGraph, pkgPath string, typeNames ...string) (*GeneratedFile, error) {
	g.graph = graph
	g.diags = diagnostic.Diagnostics{}

	pkg := graph.Packages[pkgPath]
	if pkg == nil {
		return nil, fmt.Errorf("package %s was not loaded", pkgPath)
	}

	ids := pkg.Structs
	if !common.IsEmpty(typeNames) {
		ids = nil
		for _, name := range typeNames {
			id := analyze.TypeID{PkgPath: pkgPath, Name: name}
			if graph.GetStruct(id) == nil {
				d := g.diags.Add(diagnostic.DiagnosticError, "missing-type", fmt.Sprintf("struct type %s not found", id), name, "")
				if guess, ok := match.Closest(name, structNames(pkg), match.DefaultThreshold); ok {
					d.Suggestions = []string{guess}
				}
				continue
			}
			ids = append(ids, id)
		}
	}
	if err := g.diags.Error(); err != nil {
		return nil, err
	}

	data := g.buildTemplateData(pkg, ids)

	var buf bytes.Buffer
	if err := fieldsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())

		return &GeneratedFile{
			Filename: g.config.Filename,
			Dir:      pkg.Dir,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Dir:      pkg.Dir,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the field table template.
type templateData struct {
	PackageName      string
	StdImports       []string
	Imports          []string
	Enums            []enumData
	Tables           []tableData
	GenerateComments bool
}

type enumData struct {
	Var     string
	Name    string
	Members []primitive.EnumMember
}

type tableData struct {
	Var      string
	TypeName string
	Columns  []columnData
}

type columnData struct {
	Name   string
	Type   string
	Access string
}

func (g *Generator) buildTemplateData(pkg *analyze.PackageInfo, ids []analyze.TypeID) *templateData {
	data := &templateData{
		PackageName:      pkg.Name,
		GenerateComments: g.config.GenerateComments,
	}

	imports := map[string]bool{
		g.config.RuntimeModule + "/primitive": true,
		g.config.RuntimeModule + "/schema":    true,
	}
	enums := make(map[analyze.TypeID]bool)

	for _, id := range ids {
		st := g.graph.GetStruct(id)
		table := tableData{Var: id.Name + "Fields", TypeName: id.Name}

		for _, f := range st.Columns() {
			name, _ := f.CSVName()
			table.Columns = append(table.Columns, columnData{
				Name:   name,
				Type:   typeExpr(&f),
				Access: accessExpr(id.Name, &f),
			})
			for _, imp := range f.Imports {
				imports[imp] = true
			}
			if f.Enum != nil {
				enums[*f.Enum] = true
			}
		}

		data.Tables = append(data.Tables, table)
	}

	for _, id := range pkg.Enums {
		if !enums[id] {
			continue
		}
		e := g.graph.GetEnum(id)
		if len(e.Members) == 0 {
			g.diags.AddWarning("empty-enum", "enum has no members", id.Name, "")
		}
		data.Enums = append(data.Enums, enumData{Var: enumVar(id), Name: id.Name, Members: e.Members})
	}

	for imp := range imports {
		if g.isStdlib(imp) {
			data.StdImports = append(data.StdImports, imp)
		} else {
			data.Imports = append(data.Imports, imp)
		}
	}
	slices.Sort(data.StdImports)
	slices.Sort(data.Imports)

	return data
}

func structNames(pkg *analyze.PackageInfo) []string {
	names := make([]string, len(pkg.Structs))
	for i, id := range pkg.Structs {
		names[i] = id.Name
	}
	return names
}

func enumVar(id analyze.TypeID) string {
	return id.Name + "Enum"
}

// isStdlib reports import paths whose first element has no dot and that do not
// belong to the runtime module.
func (g *Generator) isStdlib(path string) bool {
	if path == g.config.RuntimeModule || strings.HasPrefix(path, g.config.RuntimeModule+"/") {
		return false
	}
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

// typeExpr renders the primitive.Type of a field.
func typeExpr(f *analyze.FieldInfo) string {
	var expr string
	if f.Enum != nil {
		expr = enumVar(*f.Enum) + ".Type()"
	} else {
		expr = fmt.Sprintf("primitive.Of(primitive.%s)", f.Kind)
		if f.ElemType != f.Kind.GoType() {
			expr += fmt.Sprintf(".Named(%q)", f.ElemType)
		}
	}

	if f.Nullable {
		expr += ".Ptr()"
	}

	return expr
}

// accessExpr renders the schema accessor of a field of record type typeName.
func accessExpr(typeName string, f *analyze.FieldInfo) string {
	ref := func(ptr string) string {
		return fmt.Sprintf("func(v *%s) %s%s { return &v.%s }", typeName, ptr, f.ElemType, f.Name)
	}

	switch f.Access {
	case analyze.AccessDirect:
		return "schema.Direct(" + ref("*") + ")"
	case analyze.AccessNullable:
		return "schema.Nullable(" + ref("**") + ")"
	case analyze.AccessEnum:
		return "schema.EnumOf(" + ref("*") + ")"
	case analyze.AccessNullableEnum:
		return "schema.NullableEnumOf(" + ref("**") + ")"
	case analyze.AccessConvert:
		canon := f.Kind.GoType()
		return fmt.Sprintf("schema.Convert(%s,\n\t\t\tfunc(c %s) %s { return %s(c) },\n\t\t\tfunc(x %s) %s { return %s(x) })",
			ref("*"), canon, f.ElemType, f.ElemType, f.ElemType, canon, canon)
	default:
		panic("no accessor for " + f.Access.String() + " field " + f.Name)
	}
}

var fieldsTemplate = template.Must(template.New("fields").Parse(`// Code generated by csv-mapper-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .StdImports}}	"{{.}}"
{{end}}{{if .StdImports}}
{{end}}{{range .Imports}}	"{{.}}"
{{end}})
{{range .Enums}}
{{if $.GenerateComments}}// {{.Var}} is the member table of {{.Name}}.
{{end}}var {{.Var}} = primitive.NewEnum({{printf "%q" .Name}},
{{range .Members}}	primitive.EnumMember{Name: {{printf "%q" .Name}}, Value: {{.Value}}},
{{end}})
{{end}}
{{range $t := .Tables}}
{{if $.GenerateComments}}// {{.Var}} is the field table of {{.TypeName}}.
{{end}}var {{.Var}} = schema.NewTable({{printf "%q" .TypeName}},
{{range .Columns}}	schema.Column[{{$t.TypeName}}]{
		Name:   {{printf "%q" .Name}},
		Type:   {{.Type}},
		Access: {{.Access}},
	},
{{end}})
{{end}}`))
