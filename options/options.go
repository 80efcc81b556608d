package options

import (
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
)

const (
	DefaultDelimiter      = ','
	DefaultFlushThreshold = 4096
)

// DefaultLineTerminator is the platform line terminator.
var DefaultLineTerminator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Options configures one deserializer or serializer. Values are copied into the engine
// at construction; there is no shared mutable state.
type Options struct {
	Mode    AddressingMode
	Headers HeadersMode
	Filter  Filter

	Delimiter rune
	// DecimalSeparator is used for fractional numbers unless the schema requires
	// invariant formatting. Zero means '.'.
	DecimalSeparator rune
	// TimeLayout formats time fields; parsing falls back to RFC 3339 and ISO dates.
	TimeLayout     string
	LineTerminator string

	// FlushThreshold is the buffered byte count after which the serializer hands
	// data to its sink.
	FlushThreshold int
	// Workers bounds the parallel deserializer and bulk loader.
	Workers int

	// StrictFieldCount reports ordinal lines with the wrong field count instead of
	// skipping them.
	StrictFieldCount bool
	// StrictEnums reports unknown enum names instead of using the zero member.
	StrictEnums bool

	Logger logr.Logger
}

// New returns options for the given modes with every other setting defaulted.
func New(mode AddressingMode, headers HeadersMode) Options {
	return Options{Mode: mode, Headers: headers}.WithDefaults()
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.LineTerminator == "" {
		o.LineTerminator = DefaultLineTerminator
	}
	if o.FlushThreshold <= 0 {
		o.FlushThreshold = DefaultFlushThreshold
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	return o
}

// Validate rejects contradictory addressing/header combinations.
func (o Options) Validate() error {
	switch o.Mode {
	case AddressingHeader:
		if o.Headers == HeadersNone || o.Headers == HeadersOrdinalIgnore {
			return fmt.Errorf("%w: headers mode %s cannot be used with %s", ErrConfiguration, o.Headers, o.Mode)
		}
	case AddressingOrdinal:
		if o.Headers == HeadersFromFile || o.Headers == HeadersFromType {
			return fmt.Errorf("%w: headers mode %s cannot be used with %s", ErrConfiguration, o.Headers, o.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown addressing mode %s", ErrConfiguration, o.Mode)
	}

	switch o.Delimiter {
	case '\n', '\r':
		return fmt.Errorf("%w: delimiter %q is a line terminator", ErrConfiguration, o.Delimiter)
	}
	if o.DecimalSeparator != 0 && o.DecimalSeparator == o.Delimiter && o.Delimiter != ',' {
		return fmt.Errorf("%w: decimal separator %q equals the delimiter", ErrConfiguration, o.DecimalSeparator)
	}
	return nil
}

// ValidateParallel applies Validate and rejects header addressing, whose header state
// cannot be shared between workers.
func (o Options) ValidateParallel() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Mode == AddressingHeader {
		return fmt.Errorf("%w: %s cannot be used for parallel deserialization", ErrConfiguration, o.Mode)
	}
	return nil
}

// WritesHeader reports whether a serializer emits a header line before the data.
func (o Options) WritesHeader() bool {
	return o.Mode == AddressingHeader || o.Headers == HeadersOrdinalIgnore
}
