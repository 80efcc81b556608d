package codec_test

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"csv-mapper/codec"
	"csv-mapper/examples/orders"
	"csv-mapper/lineio"
	"csv-mapper/options"
	"csv-mapper/primitive"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ordinal() options.Options {
	o := options.New(options.AddressingOrdinal, options.HeadersNone)
	o.LineTerminator = "\n"
	return o
}

func header(h options.HeadersMode) options.Options {
	o := options.New(options.AddressingHeader, h)
	o.LineTerminator = "\n"
	return o
}

func collectOrders(t *testing.T, src lineio.Source, opts options.Options) ([]*orders.BuyOrder, error) {
	t.Helper()
	return codec.NewDeserializer(src, orders.BuyOrderFields, opts).Collect(context.Background())
}

func orderIDs(items []*orders.BuyOrder) []int {
	out := make([]int, len(items))
	for i, o := range items {
		out[i] = o.OrderID
	}
	slices.Sort(out)
	return out
}

func sampleOrders() []*orders.BuyOrder {
	desc := "two boxes"
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	return []*orders.BuyOrder{
		{
			OrderID:     1,
			ClientID:    10,
			Description: &desc,
			CreatedDate: &created,
			ProductID:   100,
			Quantity:    2,
			UnitPrice:   decimal.RequireFromString("12.50"),
			RecipeType:  orders.RecipeA,
		},
		{
			OrderID:    2,
			ClientID:   11,
			ProductID:  101,
			Quantity:   1,
			UnitPrice:  decimal.RequireFromString("1234.5"),
			RecipeType: orders.RecipeC,
		},
		{
			OrderID:   3,
			ClientID:  12,
			ProductID: 102,
		},
	}
}

func assertOrderEqual(t *testing.T, want, got *orders.BuyOrder) {
	t.Helper()
	require.NotNil(t, got)

	assert.Equal(t, want.OrderID, got.OrderID)
	assert.Equal(t, want.ClientID, got.ClientID)
	assert.Equal(t, want.Description, got.Description)
	if want.CreatedDate == nil {
		assert.Nil(t, got.CreatedDate)
	} else if assert.NotNil(t, got.CreatedDate) {
		assert.True(t, want.CreatedDate.Equal(*got.CreatedDate), "%s != %s", want.CreatedDate, got.CreatedDate)
	}
	assert.Equal(t, want.ProductID, got.ProductID)
	assert.Equal(t, want.Quantity, got.Quantity)
	assert.True(t, want.UnitPrice.Equal(got.UnitPrice), "%s != %s", want.UnitPrice, got.UnitPrice)
	assert.Equal(t, want.RecipeType, got.RecipeType)
}

func TestRoundTrip_HeaderMode(t *testing.T) {
	t.Parallel()

	want := sampleOrders()
	opts := header(options.HeadersFromFile)

	var sink lineio.MemorySink
	require.NoError(t, codec.NewSerializer(&sink, orders.BuyOrderFields, opts).SerializeSlice(context.Background(), want))

	text := sink.String()
	assert.True(t, strings.HasPrefix(text, "OrderID,ClientID,Description,CreatedDate,ProductID,Quantity,UnitPrice,RecipeType\n"), text)
	assert.Contains(t, text, "1,10,two boxes,2024-03-01T10:30:00Z,100,2,12.5,RecipeA\n")
	assert.Contains(t, text, "3,12,,,102,0,0,RecipeNone\n")

	got, err := collectOrders(t, lineio.FromString(text), opts)
	require.NoError(t, err)
	require.Len(t, got, len(want), spew.Sdump(got))
	for i := range want {
		assertOrderEqual(t, want[i], got[i])
	}
}

func TestRoundTrip_OrdinalIgnore(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.Headers = options.HeadersOrdinalIgnore
	opts.Delimiter = ';'
	opts.DecimalSeparator = ','

	var sink lineio.MemorySink
	require.NoError(t, codec.NewSerializer(&sink, orders.BuyOrderFields, opts).SerializeSlice(context.Background(), sampleOrders()))

	lines := strings.Split(strings.TrimSpace(sink.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "OrderID;ClientID;Description;CreatedDate;ProductID;Quantity;UnitPrice;RecipeType", lines[0])
	assert.Equal(t, "2;11;;;101;1;1234,5;RecipeC", lines[2])

	got, err := collectOrders(t, lineio.FromString(sink.String()), opts)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range sampleOrders() {
		assertOrderEqual(t, want, got[i])
	}
}

func TestDeserialize_OrdinalSkipsFieldCountMismatch(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		logged []string
	)
	opts := ordinal()
	opts.Logger = funcr.New(func(_, args string) {
		mu.Lock()
		defer mu.Unlock()
		logged = append(logged, args)
	}, funcr.Options{Verbosity: 1})

	src := lineio.FromLines(
		"1,10,a,,100,2,12.5,RecipeA",
		"2,10,b,100,2",
		"3,10,c,,100,2,1.5,RecipeB",
		"4,10,d,,100,2,1.5,RecipeB,extra",
	)

	got, err := collectOrders(t, src, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, orderIDs(got))

	mu.Lock()
	joined := strings.Join(logged, "\n")
	mu.Unlock()
	assert.Contains(t, joined, "line skipped")

	t.Run("strict", func(t *testing.T) {
		strict := ordinal()
		strict.StrictFieldCount = true

		got, err := collectOrders(t, src, strict)
		assert.Equal(t, []int{1, 3}, orderIDs(got))
		require.ErrorIs(t, err, codec.ErrFieldCount)

		var re *codec.RecordError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, 2, re.Line)
		assert.Contains(t, err.Error(), "line 4")
	})
}

func TestDeserialize_ConversionErrorContinues(t *testing.T) {
	t.Parallel()

	src := lineio.FromLines(
		"1,10,a,,100,2,12.5,RecipeA",
		"2,10,b,,100,many,1.5,RecipeB",
		"3,10,c,,100,2,1.5,RecipeB",
	)

	seq, err := codec.NewDeserializer(src, orders.BuyOrderFields, ordinal()).Records(context.Background())
	require.NoError(t, err)

	var (
		ids  []int
		errs []error
	)
	for obj, err := range seq {
		if err != nil {
			assert.Nil(t, obj)
			errs = append(errs, err)
			continue
		}
		ids = append(ids, obj.OrderID)
	}

	assert.Equal(t, []int{1, 3}, ids)
	require.Len(t, errs, 1)

	var re *codec.RecordError
	require.ErrorAs(t, errs[0], &re)
	assert.Equal(t, 2, re.Line)

	var ce *primitive.ConversionError
	require.ErrorAs(t, errs[0], &ce)
	assert.Equal(t, "Quantity", ce.Field)
	assert.Equal(t, "many", ce.Text)
	assert.ErrorIs(t, errs[0], primitive.ErrConversion)
}

func TestDeserialize_EnumFallback(t *testing.T) {
	t.Parallel()

	src := lineio.FromLines("5,10,e,,100,1,1,Bogus", "6,10,f,,100,1,1,recipeb")

	got, err := collectOrders(t, src, ordinal())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, orders.RecipeNone, got[0].RecipeType)
	assert.Equal(t, orders.RecipeNone, got[1].RecipeType, "member names are case sensitive")

	strict := ordinal()
	strict.StrictEnums = true
	got, err = collectOrders(t, src, strict)
	assert.Empty(t, got)
	require.ErrorIs(t, err, primitive.ErrConversion)
}

func TestDeserialize_HeaderFromFile(t *testing.T) {
	t.Parallel()

	opts := header(options.HeadersFromFile)
	opts.Filter = options.MustFilter(options.IgnoreNames("ClientID"))

	src := lineio.FromLines(
		"RecipeType, OrderID,,Unknown,Quantity,ClientID",
		"RecipeB,7,zzz,whatever,3,99",
		"RecipeC,8",
	)

	got, err := collectOrders(t, src, opts)
	require.NoError(t, err)
	require.Len(t, got, 2, spew.Sdump(got))

	assert.Equal(t, orders.RecipeB, got[0].RecipeType)
	assert.Equal(t, 7, got[0].OrderID)
	assert.Equal(t, 3, got[0].Quantity)
	assert.Zero(t, got[0].ClientID, "ignored field is not assigned")

	assert.Equal(t, orders.RecipeC, got[1].RecipeType)
	assert.Equal(t, 8, got[1].OrderID)
	assert.Zero(t, got[1].Quantity, "short row leaves the rest unset")
}

func TestDeserialize_UnknownHeaderSuggestsField(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		logged []string
	)
	opts := header(options.HeadersFromFile)
	opts.Logger = funcr.New(func(_, args string) {
		mu.Lock()
		logged = append(logged, args)
		mu.Unlock()
	}, funcr.Options{Verbosity: 1})

	got, err := collectOrders(t, lineio.FromLines("OrderID,Quanity,Warehouse", "5,2,north"), opts)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].OrderID)
	assert.Zero(t, got[0].Quantity)

	mu.Lock()
	joined := strings.Join(logged, "\n")
	mu.Unlock()
	assert.Contains(t, joined, `"name"="Quanity" "closest"="Quantity"`)
	assert.Contains(t, joined, `"name"="Warehouse"`)
	assert.NotContains(t, joined, `"name"="Warehouse" "closest"`)
}

func TestDeserialize_TabTrailingEmptyField(t *testing.T) {
	t.Parallel()

	line := "1\t10\ta\t\t100\t2\t12.5\t"

	opts := ordinal()
	opts.Delimiter = '\t'
	got, err := collectOrders(t, lineio.FromLines(line), opts)
	require.NoError(t, err)
	assert.Empty(t, got, "trimmed line is one field short")

	opts.StrictFieldCount = true
	_, err = collectOrders(t, lineio.FromLines(line), opts)
	require.ErrorIs(t, err, codec.ErrFieldCount)

	opts = header(options.HeadersFromFile)
	opts.Delimiter = '\t'
	src := lineio.FromLines(
		"OrderID\tClientID\tDescription\tCreatedDate\tProductID\tQuantity\tUnitPrice\tRecipeType",
		line,
	)
	got, err = collectOrders(t, src, opts)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].OrderID)
	assert.Equal(t, orders.RecipeNone, got[0].RecipeType)
}

func TestDeserialize_HeaderFromType(t *testing.T) {
	t.Parallel()

	opts := header(options.HeadersFromType)
	opts.Filter = options.MustFilter(options.IgnoreNames("CreatedDate"))

	got, err := collectOrders(t, lineio.FromLines("1,10,a,100,2,12.5,RecipeA"), opts)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := sampleOrders()[0]
	want.Description = got[0].Description
	want.CreatedDate = nil
	assert.Equal(t, "a", *got[0].Description)
	assertOrderEqual(t, want, got[0])
}

func TestDeserialize_IgnoredFieldShrinksOrdinalCount(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.Filter = options.MustFilter(options.IgnoreNames("CreatedDate"))

	src := lineio.FromLines(
		"1,10,a,100,2,12.5,RecipeA",
		"2,10,b,,100,2,12.5,RecipeA",
	)
	got, err := collectOrders(t, src, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, orderIDs(got))
	assert.Nil(t, got[0].CreatedDate)
}

func TestDeserialize_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode    options.AddressingMode
		headers options.HeadersMode
	}{
		{options.AddressingHeader, options.HeadersNone},
		{options.AddressingHeader, options.HeadersOrdinalIgnore},
		{options.AddressingOrdinal, options.HeadersFromFile},
		{options.AddressingOrdinal, options.HeadersFromType},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%s", tc.mode, tc.headers), func(t *testing.T) {
			t.Parallel()
			d := codec.NewDeserializer(lineio.FromLines("1"), orders.BuyOrderFields, options.New(tc.mode, tc.headers))

			seq, err := d.Records(context.Background())
			require.ErrorIs(t, err, options.ErrConfiguration)
			assert.Nil(t, seq)

			_, err = d.Parallel(context.Background())
			require.ErrorIs(t, err, options.ErrConfiguration)
		})
	}

	d := codec.NewDeserializer(lineio.FromLines("1"), orders.BuyOrderFields, header(options.HeadersFromFile))
	_, err := d.Parallel(context.Background())
	require.ErrorIs(t, err, options.ErrConfiguration)
	_, err = codec.LoadParallel(context.Background(), d, 10)
	require.ErrorIs(t, err, options.ErrConfiguration)

	_, err = codec.NewDeserializer[orders.BuyOrder](nil, orders.BuyOrderFields, ordinal()).Records(context.Background())
	require.ErrorIs(t, err, options.ErrInvalidArgument)
	_, err = codec.NewDeserializer[orders.BuyOrder](lineio.FromLines("1"), nil, ordinal()).Records(context.Background())
	require.ErrorIs(t, err, options.ErrInvalidArgument)
}

func TestDeserialize_Restartable(t *testing.T) {
	t.Parallel()

	seq, err := codec.NewDeserializer(lineio.FromLines("1,10,a,,100,2,12.5,RecipeA"), orders.BuyOrderFields, ordinal()).
		Records(context.Background())
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 1, count())
	assert.Equal(t, 1, count())
}

func manyLines(n int) lineio.Source {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d,1,x,,5,1,0.5,RecipeN", i+1)
	}
	return lineio.FromLines(lines...)
}

func TestParallel(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.Workers = 4

	got, err := codec.NewDeserializer(manyLines(200), orders.BuyOrderFields, opts).Parallel(context.Background())
	require.NoError(t, err)

	ids := orderIDs(got)
	require.Len(t, ids, 200)
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}
}

func TestParallel_RecordErrors(t *testing.T) {
	t.Parallel()

	src := lineio.FromLines(
		"OrderID,ClientID,Description,CreatedDate,ProductID,Quantity,UnitPrice,RecipeType",
		"1,10,a,,100,2,12.5,RecipeA",
		"2,10,b,,100,2,nope,RecipeA",
	)
	opts := ordinal()
	opts.Headers = options.HeadersOrdinalIgnore

	got, err := codec.NewDeserializer(src, orders.BuyOrderFields, opts).Parallel(context.Background())
	assert.Equal(t, []int{1}, orderIDs(got))

	var re *codec.RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, re.Line)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d := codec.NewDeserializer(manyLines(10), orders.BuyOrderFields, ordinal())

	c, err := codec.Load(context.Background(), d, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, []int{1, 2, 3}, orderIDs(c.ToSlice()))

	_, err = codec.Load(context.Background(), d, 0)
	require.ErrorIs(t, err, options.ErrInvalidArgument)
	_, err = codec.Load[orders.BuyOrder](context.Background(), nil, 1)
	require.ErrorIs(t, err, options.ErrInvalidArgument)
}

func TestLoadParallel_CapacityKeepsSubset(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.Workers = 8
	d := codec.NewDeserializer(manyLines(100), orders.BuyOrderFields, opts)

	c, err := codec.LoadParallel(context.Background(), d, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Count())

	ids := orderIDs(c.ToSlice())
	assert.Len(t, slices.Compact(ids), 10, "no duplicates")
	for _, id := range ids {
		assert.True(t, id >= 1 && id <= 100)
	}

	full, err := codec.LoadParallel(context.Background(), d, 1000)
	require.NoError(t, err)
	assert.Equal(t, 100, full.Count())
	assert.Equal(t, 1000, full.Capacity())
}

func TestLoadParallel_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := codec.LoadParallel(ctx, codec.NewDeserializer(manyLines(10), orders.BuyOrderFields, ordinal()), 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSerialize_InvariantDecimal(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.DecimalSeparator = ','
	opts.Filter = options.MustFilter(options.IncludeNames("OrderID", "UnitPrice"))

	var sink lineio.MemorySink
	s := codec.NewSerializer(&sink, orders.BuyOrderFields, opts)
	require.NoError(t, s.SerializeOne(context.Background(), &orders.BuyOrder{
		OrderID:   9,
		UnitPrice: decimal.RequireFromString("1234.5"),
	}))

	assert.Equal(t, "9,1234.5\n", sink.String())
}

// countingSink records every queued buffer.
type countingSink struct {
	lineio.MemorySink
	queued int
}

func (c *countingSink) Queue(p []byte) {
	c.queued++
	c.MemorySink.Queue(p)
}

func TestSerialize_FlushThreshold(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.FlushThreshold = 64

	items := make([]*orders.BuyOrder, 50)
	for i := range items {
		items[i] = &orders.BuyOrder{OrderID: i, UnitPrice: decimal.NewFromInt(int64(i))}
	}

	var sink countingSink
	require.NoError(t, codec.NewSerializer(&sink, orders.BuyOrderFields, opts).SerializeSlice(context.Background(), items))

	assert.Greater(t, sink.queued, 1)
	assert.Equal(t, 1, sink.Flushes)
	assert.Equal(t, 50, strings.Count(sink.String(), "\n"))
}

func TestSerialize_CancelledBatchLeavesNothingQueued(t *testing.T) {
	t.Parallel()

	opts := ordinal()
	opts.FlushThreshold = 16

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batch := func(yield func(*orders.BuyOrder) bool) {
		for i := range 10 {
			if i == 3 {
				cancel()
			}
			if !yield(&orders.BuyOrder{OrderID: 100 + i}) {
				return
			}
		}
	}

	var sink lineio.MemorySink
	s := codec.NewSerializer(&sink, orders.BuyOrderFields, opts)

	require.ErrorIs(t, s.Serialize(ctx, batch), context.Canceled)
	assert.Zero(t, sink.Pending())
	assert.Empty(t, sink.String())

	require.NoError(t, s.SerializeOne(context.Background(), &orders.BuyOrder{OrderID: 1}))
	assert.Equal(t, "1,0,,,0,0,0,RecipeNone\n", sink.String())
}

func TestDeserialize_LongLineDoesNotEndRun(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("d", 2<<20)
	src := lineio.FromLines(
		"1,10,a,,100,2,12.5,RecipeA",
		"2,10,"+long+",,100,2,12.5,RecipeA",
		"3,10,c,,100,2,1.5,RecipeB",
		"4,10,d,,100,2,1.5,RecipeB",
	)

	got, err := collectOrders(t, src, ordinal())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, orderIDs(got))
	assert.Len(t, *got[1].Description, len(long))
}

func TestSerialize_Arguments(t *testing.T) {
	t.Parallel()

	var sink lineio.MemorySink
	s := codec.NewSerializer(&sink, orders.BuyOrderFields, ordinal())
	ctx := context.Background()

	require.ErrorIs(t, s.Serialize(ctx, nil), options.ErrInvalidArgument)
	require.ErrorIs(t, s.SerializeSlice(ctx, nil), options.ErrInvalidArgument)
	require.ErrorIs(t, s.SerializeCollection(ctx, nil), options.ErrInvalidArgument)
	require.ErrorIs(t, s.SerializeOne(ctx, nil), options.ErrInvalidArgument)

	// nil elements inside a sequence are skipped
	require.NoError(t, s.SerializeSlice(ctx, []*orders.BuyOrder{nil, {OrderID: 4}, nil}))
	assert.Equal(t, "4,0,,,0,0,0,RecipeNone\n", sink.String())

	bad := codec.NewSerializer(&sink, orders.BuyOrderFields, options.New(options.AddressingOrdinal, options.HeadersFromFile))
	require.ErrorIs(t, bad.SerializeOne(ctx, &orders.BuyOrder{}), options.ErrConfiguration)

	noSink := codec.NewSerializer[orders.BuyOrder](nil, orders.BuyOrderFields, ordinal())
	require.ErrorIs(t, noSink.SerializeOne(ctx, &orders.BuyOrder{}), options.ErrInvalidArgument)
}

func TestSerialize_OneWritesNoHeader(t *testing.T) {
	t.Parallel()

	var sink lineio.MemorySink
	s := codec.NewSerializer(&sink, orders.BuyOrderFields, header(options.HeadersFromFile))
	require.NoError(t, s.SerializeOne(context.Background(), &orders.BuyOrder{OrderID: 1}))
	assert.Equal(t, "1,0,,,0,0,0,RecipeNone\n", sink.String())
}

func TestSerialize_Collection(t *testing.T) {
	t.Parallel()

	c, err := codec.Load(context.Background(),
		codec.NewDeserializer(manyLines(3), orders.BuyOrderFields, ordinal()), 3)
	require.NoError(t, err)

	var sink lineio.MemorySink
	require.NoError(t, codec.NewSerializer(&sink, orders.BuyOrderFields, ordinal()).
		SerializeCollection(context.Background(), c))

	assert.Equal(t, "1,1,x,,5,1,0.5,RecipeN\n2,1,x,,5,1,0.5,RecipeN\n3,1,x,,5,1,0.5,RecipeN\n", sink.String())
}

func TestShipment_ZstdFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shipments.csv.zst")
	status := orders.StatusDelivered
	want := []*orders.Shipment{
		{
			ID:        1,
			Carrier:   "acme",
			Weight:    2.5,
			Distance:  1200.75,
			Express:   true,
			Transit:   36 * time.Hour,
			ShippedAt: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
			Fee:       1999,
			Status:    &status,
			Tracking:  "TRK-1",
			Note:      "not persisted",
		},
		{ID: 2, Carrier: "bolt", ShippedAt: time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)},
	}

	opts := header(options.HeadersFromFile)
	opts.Delimiter = ';'
	opts.DecimalSeparator = ','
	opts.Logger = logr.Discard()

	sink := lineio.NewFileSink(path)
	require.NoError(t, codec.NewSerializer(sink, orders.ShipmentFields, opts).SerializeSlice(context.Background(), want))
	require.NoError(t, sink.Close())

	got, err := codec.NewDeserializer(lineio.NewFile(path), orders.ShipmentFields, opts).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := *want[0]
	first.Note = ""
	assert.True(t, first.ShippedAt.Equal(got[0].ShippedAt))
	first.ShippedAt = got[0].ShippedAt
	assert.Equal(t, first, *got[0])

	assert.Nil(t, got[1].Status)
	assert.Equal(t, "bolt", got[1].Carrier)
}
