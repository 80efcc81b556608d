package analyze

import (
	"go/types"
)

// TypeString renders t the way it is written in the source of package from: types of
// from are unqualified, others are qualified by package name.
// Examples:
//   - "int"
//   - "*time.Time"
//   - "decimal.Decimal"
//   - "RecipeType" for a type declared in from
func TypeString(t types.Type, from *types.Package) string {
	return types.TypeString(t, Qualifier(from))
}

// Qualifier returns the package qualifier used by TypeString.
func Qualifier(from *types.Package) types.Qualifier {
	return func(p *types.Package) string {
		if p == from {
			return ""
		}
		return p.Name()
	}
}

// FieldPath returns a path string for a field within a type.
// Example: BuyOrder, Description -> "BuyOrder.Description"
func FieldPath(typeName, fieldName string) string {
	if fieldName == "" {
		return typeName
	}
	return typeName + "." + fieldName
}
