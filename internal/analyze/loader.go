package analyze

import (
	"cmp"
	"fmt"
	"go/constant"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"

	"csv-mapper/internal/diagnostic"
	"csv-mapper/primitive"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Types with a fixed kind regardless of their underlying type.
var knownTypes = map[TypeID]primitive.KindEnum{
	{PkgPath: "time", Name: "Time"}:                              primitive.KindTime,
	{PkgPath: "time", Name: "Duration"}:                          primitive.KindDuration,
	{PkgPath: "github.com/shopspring/decimal", Name: "Decimal"}: primitive.KindDecimal,
}

var basicKinds = map[types.BasicKind]primitive.KindEnum{
	types.Int:     primitive.KindInt,
	types.Int8:    primitive.KindInt8,
	types.Int16:   primitive.KindInt16,
	types.Int32:   primitive.KindInt32,
	types.Int64:   primitive.KindInt64,
	types.Uint:    primitive.KindUint,
	types.Uint8:   primitive.KindUint8,
	types.Uint16:  primitive.KindUint16,
	types.Uint32:  primitive.KindUint32,
	types.Uint64:  primitive.KindUint64,
	types.Float32: primitive.KindFloat32,
	types.Float64: primitive.KindFloat64,
	types.Bool:    primitive.KindBool,
	types.String:  primitive.KindString,
}

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory packages are resolved from; empty means the current one.
	Dir string

	graph *TypeGraph
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./orders", "csv-mapper/examples/orders").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// Diagnostics returns the problems found while classifying fields.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// processPackage extracts enums first, so struct fields can refer to them.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}
	a.graph.Packages[pkg.PkgPath] = pkgInfo

	scope := pkg.Types.Scope()
	a.collectEnums(pkg.Types, pkgInfo)

	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Structs[id] = a.analyzeStruct(pkg.Types, id, st)
		pkgInfo.Structs = append(pkgInfo.Structs, id)
	}
}

// collectEnums finds named integer types of pkg with at least one exported constant.
func (a *Analyzer) collectEnums(pkg *types.Package, pkgInfo *PackageInfo) {
	type member struct {
		obj *types.Const
		val int64
	}
	found := make(map[*types.TypeName][]member)
	// Enum values travel as int64; a type with any member outside that range stays a plain integer.
	wide := make(map[*types.TypeName]bool)

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg || !isInteger(named.Underlying()) {
			continue
		}
		if _, known := knownTypes[TypeID{PkgPath: pkg.Path(), Name: named.Obj().Name()}]; known {
			continue
		}

		v, exact := constant.Int64Val(constant.ToInt(c.Val()))
		if !exact {
			if !wide[named.Obj()] {
				a.diags.AddWarning("enum-value",
					fmt.Sprintf("constant %s does not fit int64; %s is stored through its underlying kind", c.Name(), named.Obj().Name()),
					named.Obj().Name(), c.Name())
			}
			wide[named.Obj()] = true
			continue
		}
		found[named.Obj()] = append(found[named.Obj()], member{obj: c, val: v})
	}

	for obj, members := range found {
		if wide[obj] {
			continue
		}
		slices.SortFunc(members, func(x, y member) int { return cmp.Compare(x.obj.Pos(), y.obj.Pos()) })

		info := &EnumInfo{
			ID:         TypeID{PkgPath: pkg.Path(), Name: obj.Name()},
			Underlying: obj.Type().Underlying().String(),
		}
		for _, m := range members {
			info.Members = append(info.Members, primitive.EnumMember{Name: m.obj.Name(), Value: m.val})
		}

		a.graph.Enums[info.ID] = info
		pkgInfo.Enums = append(pkgInfo.Enums, info.ID)
	}

	slices.SortFunc(pkgInfo.Enums, func(x, y TypeID) int { return cmp.Compare(x.Name, y.Name) })
}

// analyzeStruct extracts the exported fields of a struct type.
func (a *Analyzer) analyzeStruct(pkg *types.Package, id TypeID, st *types.Struct) *StructInfo {
	info := &StructInfo{ID: id}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		// Only exported fields are reachable from a field table
		if !field.Exported() {
			continue
		}

		fi := FieldInfo{
			Name:  field.Name(),
			Index: i,
			Tag:   reflect.StructTag(st.Tag(i)),
		}

		if field.Embedded() {
			fi.Reason = "embedded fields are not flattened"
		} else {
			a.classify(pkg, field.Type(), &fi)
		}

		if !fi.Supported() {
			a.diags.AddWarning("unsupported-field", fi.Reason, id.Name, fi.Name)
		} else if _, ok := fi.CSVName(); !ok {
			a.diags.AddInfo("skipped-field", `excluded by csv:"-"`, id.Name, fi.Name)
		}

		info.Fields = append(info.Fields, fi)
	}

	return info
}

// classify fills the kind, declared type and accessor shape of a field.
func (a *Analyzer) classify(pkg *types.Package, t types.Type, fi *FieldInfo) {
	fi.TypeName = TypeString(t, pkg)

	if ptr, ok := t.(*types.Pointer); ok {
		fi.Nullable = true
		t = ptr.Elem()
	}
	fi.ElemType = TypeString(t, pkg)

	switch tt := t.(type) {
	case *types.Basic:
		kind, ok := basicKinds[tt.Kind()]
		if !ok {
			fi.Reason = fmt.Sprintf("unsupported basic type %s", tt)
			return
		}
		fi.Kind = kind
		fi.Access = pick(fi.Nullable, AccessDirect, AccessNullable)

	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			fi.Reason = fmt.Sprintf("unsupported type %s", fi.TypeName)
			return
		}
		id := TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}

		if kind, ok := knownTypes[id]; ok {
			fi.Kind = kind
			fi.Access = pick(fi.Nullable, AccessDirect, AccessNullable)
			fi.addImport(pkg, obj.Pkg())
			return
		}

		if enum := a.graph.GetEnum(id); enum != nil && obj.Pkg() == pkg {
			fi.Kind = primitive.KindPrimitiveEnum
			fi.Enum = &enum.ID
			fi.Access = pick(fi.Nullable, AccessEnum, AccessNullableEnum)
			return
		}

		basic, ok := tt.Underlying().(*types.Basic)
		if !ok {
			fi.Reason = fmt.Sprintf("unsupported type %s", fi.TypeName)
			return
		}
		kind, ok := basicKinds[basic.Kind()]
		if !ok {
			fi.Reason = fmt.Sprintf("unsupported underlying type %s of %s", basic, fi.TypeName)
			return
		}
		if fi.Nullable {
			fi.Reason = fmt.Sprintf("pointer to named type %s is not supported", fi.ElemType)
			return
		}
		fi.Kind = kind
		fi.Access = AccessConvert
		fi.addImport(pkg, obj.Pkg())

	default:
		fi.Reason = fmt.Sprintf("unsupported type %s", fi.TypeName)
	}
}

func (fi *FieldInfo) addImport(from, pkg *types.Package) {
	if pkg != from {
		fi.Imports = append(fi.Imports, pkg.Path())
	}
}

func pick(nullable bool, plain, ptr AccessKind) AccessKind {
	if nullable {
		return ptr
	}
	return plain
}

func isInteger(t types.Type) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Info()&types.IsInteger != 0
}

// GetStruct returns the StructInfo of an analyzed struct type.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*StructInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetStruct(id)
	if info == nil {
		return nil, fmt.Errorf("struct type %s not found", id)
	}
	return info, nil
}
