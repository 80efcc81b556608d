package primitive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrConversion = errors.New("conversion failed")

// ConversionError reports text that cannot be represented as the target type.
type ConversionError struct {
	Field string
	Type  Type
	Text  string
	Err   error
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	b.WriteString("cannot convert ")
	b.WriteString(strconv.Quote(e.Text))
	b.WriteString(" to ")
	b.WriteString(e.Type.String())
	if e.Field != "" {
		b.WriteString(" (field ")
		b.WriteString(e.Field)
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

func (e *ConversionError) Unwrap() error { return e.Err }

var errUnknownMember = errors.New("no such enum member")

// fallbackTimeLayouts are tried after the configured layout.
var fallbackTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Coercer converts field text to typed values and back.
//
// Values produced by Parse are of the canonical Go type of the kind (see KindEnum.GoType);
// enum values are int64.
type Coercer struct {
	// StrictEnums reports unknown enum names as errors instead of the zero member.
	StrictEnums bool
	// DecimalSeparator is the separator used for fractional numbers when Invariant is false.
	// Zero means '.'.
	DecimalSeparator rune
	// Invariant forces '.' as the decimal separator when formatting.
	Invariant bool
	// TimeLayout formats time values and is tried first when parsing them.
	TimeLayout string
}

func (c Coercer) separator() rune {
	if c.Invariant || c.DecimalSeparator == 0 {
		return '.'
	}
	return c.DecimalSeparator
}

// Parse converts one field. Blank text yields a nil value for every kind.
func (c Coercer) Parse(text string, t Type) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	v, err := c.parse(text, t)
	if err != nil {
		return nil, &ConversionError{Type: t, Text: text, Err: err}
	}
	return v, nil
}

func (c Coercer) parse(text string, t Type) (any, error) {
	if t.Kind == KindString {
		return text, nil
	}
	s := strings.TrimSpace(text)

	switch t.Kind {
	case KindPrimitiveEnum:
		if t.Enum == nil {
			return nil, fmt.Errorf("enum %s has no member table", t.Name)
		}
		if v, ok := t.Enum.Lookup(s); ok {
			return v, nil
		}
		if c.StrictEnums {
			return nil, errUnknownMember
		}
		return t.Enum.Zero(), nil

	case KindFloat32, KindFloat64, KindDecimal:
		if sep := c.separator(); sep != '.' {
			s = strings.ReplaceAll(s, string(sep), ".")
		}
		if t.Kind == KindDecimal {
			return decimal.NewFromString(s)
		}
		f, err := strconv.ParseFloat(s, t.Kind.Bits())
		if err != nil {
			return nil, err
		}
		if t.Kind == KindFloat32 {
			return float32(f), nil
		}
		return f, nil

	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		n, err := strconv.ParseInt(s, 10, t.Kind.Bits())
		if err != nil {
			return nil, err
		}
		return signed(t.Kind, n), nil

	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		n, err := strconv.ParseUint(s, 10, t.Kind.Bits())
		if err != nil {
			return nil, err
		}
		return unsigned(t.Kind, n), nil

	case KindBool:
		return strconv.ParseBool(s)

	case KindDuration:
		return time.ParseDuration(s)

	case KindTime:
		return c.parseTime(s)

	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind)
	}
}

func (c Coercer) parseTime(s string) (time.Time, error) {
	var firstErr error
	if c.TimeLayout != "" {
		tm, err := time.Parse(c.TimeLayout, s)
		if err == nil {
			return tm, nil
		}
		firstErr = err
	}
	for _, layout := range fallbackTimeLayouts {
		tm, err := time.Parse(layout, s)
		if err == nil {
			return tm, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func signed(k KindEnum, n int64) any {
	switch k {
	case KindInt:
		return int(n)
	case KindInt8:
		return int8(n)
	case KindInt16:
		return int16(n)
	case KindInt32:
		return int32(n)
	default:
		return n
	}
}

func unsigned(k KindEnum, n uint64) any {
	switch k {
	case KindUint:
		return uint(n)
	case KindUint8:
		return uint8(n)
	case KindUint16:
		return uint16(n)
	case KindUint32:
		return uint32(n)
	default:
		return n
	}
}

// Format renders a value as field text. Nil renders as an empty field.
func (c Coercer) Format(v any, t Type) string {
	return string(c.AppendFormat(nil, v, t))
}

// AppendFormat appends the field text of v to dst.
func (c Coercer) AppendFormat(dst []byte, v any, t Type) []byte {
	switch x := v.(type) {
	case nil:
		return dst
	case string:
		return append(dst, x...)
	case int64:
		if t.Kind == KindPrimitiveEnum && t.Enum != nil {
			if name, ok := t.Enum.MemberName(x); ok {
				return append(dst, name...)
			}
		}
		return strconv.AppendInt(dst, x, 10)
	case int:
		return strconv.AppendInt(dst, int64(x), 10)
	case int8:
		return strconv.AppendInt(dst, int64(x), 10)
	case int16:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	case float32:
		return c.appendFractional(dst, strconv.FormatFloat(float64(x), 'f', -1, 32))
	case float64:
		return c.appendFractional(dst, strconv.FormatFloat(x, 'f', -1, 64))
	case decimal.Decimal:
		return c.appendFractional(dst, x.String())
	case bool:
		return strconv.AppendBool(dst, x)
	case time.Duration:
		return append(dst, x.String()...)
	case time.Time:
		layout := c.TimeLayout
		if layout == "" {
			layout = time.RFC3339Nano
		}
		return x.AppendFormat(dst, layout)
	case fmt.Stringer:
		return append(dst, x.String()...)
	default:
		return fmt.Append(dst, x)
	}
}

func (c Coercer) appendFractional(dst []byte, s string) []byte {
	if sep := c.separator(); sep != '.' {
		s = strings.Replace(s, ".", string(sep), 1)
	}
	return append(dst, s...)
}
