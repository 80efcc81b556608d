package primitive

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named integer type with declared members

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsFractional reports kinds whose text form carries a decimal separator.
func (k KindEnum) IsFractional() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64, KindPrimitiveEnum:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// GoType returns the canonical Go type name produced by Parse for the kind.
func (k KindEnum) GoType() string {
	switch k {
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64, KindPrimitiveEnum:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal.Decimal"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindTime:
		return "time.Time"
	case KindDuration:
		return "time.Duration"
	default:
		return ""
	}
}

// KindOf classifies a value of a canonical Go type. Unknown values yield the zero kind.
func KindOf(v any) KindEnum {
	switch v.(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case decimal.Decimal:
		return KindDecimal
	case bool:
		return KindBool
	case string:
		return KindString
	case time.Time:
		return KindTime
	case time.Duration:
		return KindDuration
	default:
		return 0
	}
}

// KindFromName maps a canonical Go type name (as returned by GoType) back to its kind.
func KindFromName(name string) KindEnum {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k == KindPrimitiveEnum {
			continue
		}
		if k.GoType() == name {
			return k
		}
	}
	return 0
}
