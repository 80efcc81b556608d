package primitive_test

import (
	"csv-mapper/primitive"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipeType = primitive.NewEnum("RecipeType",
	primitive.EnumMember{Name: "None", Value: 0},
	primitive.EnumMember{Name: "RecipeN", Value: 1},
	primitive.EnumMember{Name: "RecipeA", Value: 2},
	primitive.EnumMember{Name: "RecipeB", Value: 3},
)

func TestCoercer_BlankIsNil(t *testing.T) {
	t.Parallel()

	var c primitive.Coercer
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		typ := primitive.Of(k)
		if k == primitive.KindPrimitiveEnum {
			typ = recipeType.Type()
		}

		for _, text := range []string{"", " ", "\t  "} {
			v, err := c.Parse(text, typ)
			require.NoError(t, err, k.String())
			assert.Nil(t, v, k.String())
		}
	}
}

func TestCoercer_Enum(t *testing.T) {
	t.Parallel()

	t.Run("member name", func(t *testing.T) {
		t.Parallel()

		v, err := primitive.Coercer{}.Parse("RecipeB", recipeType.Type())
		require.NoError(t, err)
		assert.Equal(t, int64(3), v)
	})

	t.Run("unknown name falls back to zero member", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"recipeb", "Soup", "RECIPEA"} {
			v, err := primitive.Coercer{}.Parse(text, recipeType.Type())
			require.NoError(t, err)
			assert.Equal(t, int64(0), v, text)
		}
	})

	t.Run("strict enums report unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := primitive.Coercer{StrictEnums: true}.Parse("Soup", recipeType.Type())
		require.ErrorIs(t, err, primitive.ErrConversion)
	})

	t.Run("format uses member name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "RecipeA", primitive.Coercer{}.Format(int64(2), recipeType.Type()))
		assert.Equal(t, "42", primitive.Coercer{}.Format(int64(42), recipeType.Type()))
	})
}

func TestCoercer_Numbers(t *testing.T) {
	t.Parallel()

	c := primitive.Coercer{}

	tests := []struct {
		name string
		text string
		kind primitive.KindEnum
		want any
	}{
		{name: "int", text: "42", kind: primitive.KindInt, want: 42},
		{name: "int8 negative", text: "-8", kind: primitive.KindInt8, want: int8(-8)},
		{name: "int32 padded", text: " 7 ", kind: primitive.KindInt32, want: int32(7)},
		{name: "uint16", text: "65535", kind: primitive.KindUint16, want: uint16(65535)},
		{name: "float64", text: "1234.5", kind: primitive.KindFloat64, want: 1234.5},
		{name: "float32", text: "0.25", kind: primitive.KindFloat32, want: float32(0.25)},
		{name: "decimal", text: "1234.50", kind: primitive.KindDecimal, want: decimal.RequireFromString("1234.5")},
		{name: "bool", text: "True", kind: primitive.KindBool, want: true},
		{name: "duration", text: "2h45m", kind: primitive.KindDuration, want: 2*time.Hour + 45*time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Parse(tt.text, primitive.Of(tt.kind))
			require.NoError(t, err)
			if d, ok := tt.want.(decimal.Decimal); ok {
				assert.True(t, d.Equal(got.(decimal.Decimal)))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoercer_ConversionError(t *testing.T) {
	t.Parallel()

	c := primitive.Coercer{}
	cases := map[string]primitive.KindEnum{
		"abc":   primitive.KindInt,
		"300":   primitive.KindUint8,
		"1,5":   primitive.KindFloat64,
		"maybe": primitive.KindBool,
		"later": primitive.KindTime,
	}
	for text, kind := range cases {
		_, err := c.Parse(text, primitive.Of(kind))
		require.ErrorIs(t, err, primitive.ErrConversion, text)

		var convErr *primitive.ConversionError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, text, convErr.Text)
		assert.Equal(t, kind, convErr.Type.Kind)
	}
}

func TestCoercer_InvariantSeparator(t *testing.T) {
	t.Parallel()

	d := decimal.RequireFromString("1234.5")

	invariant := primitive.Coercer{DecimalSeparator: ',', Invariant: true}
	assert.Equal(t, "1234.5", invariant.Format(d, primitive.Of(primitive.KindDecimal)))
	assert.Equal(t, "0.5", invariant.Format(0.5, primitive.Of(primitive.KindFloat64)))

	local := primitive.Coercer{DecimalSeparator: ','}
	assert.Equal(t, "1234,5", local.Format(d, primitive.Of(primitive.KindDecimal)))

	v, err := local.Parse("1234,5", primitive.Of(primitive.KindFloat64))
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)

	// the invariant separator is always understood
	v, err = invariant.Parse("1234.5", primitive.Of(primitive.KindFloat64))
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)
}

func TestCoercer_Time(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

	c := primitive.Coercer{}
	text := c.Format(ts, primitive.Of(primitive.KindTime))
	assert.Equal(t, "2024-03-09T14:30:00Z", text)

	got, err := c.Parse(text, primitive.Of(primitive.KindTime).Ptr())
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.(time.Time)))

	got, err = c.Parse("2024-03-09", primitive.Of(primitive.KindTime))
	require.NoError(t, err)
	assert.Equal(t, 9, got.(time.Time).Day())

	custom := primitive.Coercer{TimeLayout: "02/01/2006"}
	assert.Equal(t, "09/03/2024", custom.Format(ts, primitive.Of(primitive.KindTime)))
	got, err = custom.Parse("09/03/2024", primitive.Of(primitive.KindTime))
	require.NoError(t, err)
	assert.Equal(t, time.March, got.(time.Time).Month())
}

func TestCoercer_FormatNilAndStrings(t *testing.T) {
	t.Parallel()

	c := primitive.Coercer{}
	assert.Equal(t, "", c.Format(nil, primitive.Of(primitive.KindInt).Ptr()))
	assert.Equal(t, " keep spaces ", c.Format(" keep spaces ", primitive.Of(primitive.KindString)))

	v, err := c.Parse(" keep spaces ", primitive.Of(primitive.KindString))
	require.NoError(t, err)
	assert.Equal(t, " keep spaces ", v)
}

func TestType_Ptr(t *testing.T) {
	t.Parallel()

	typ := primitive.Of(primitive.KindTime).Ptr()
	assert.True(t, typ.Nullable)
	assert.Equal(t, "*time.Time", typ.Name)
	assert.Equal(t, typ, typ.Ptr())

	named := recipeType.Type().Ptr()
	assert.Equal(t, "*RecipeType", named.String())
}
