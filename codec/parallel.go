package codec

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"csv-mapper/collection"
	"csv-mapper/options"

	"golang.org/x/sync/errgroup"
)

// Parallel decodes every line with up to Options.Workers goroutines and returns the
// records in no particular order. Header addressing is rejected with
// options.ErrConfiguration.
func (d *Deserializer[T]) Parallel(ctx context.Context) ([]*T, error) {
	var (
		mu  sync.Mutex
		out []*T
	)
	err := d.fanOut(ctx, func(obj *T) bool {
		mu.Lock()
		defer mu.Unlock()
		out = append(out, obj)
		return true
	})
	return out, err
}

// fanOut reads lines on the calling goroutine and decodes them on a bounded group of
// workers, handing each record to add. Record errors are joined; a source error or
// cancellation stops the run.
func (d *Deserializer[T]) fanOut(ctx context.Context, add func(*T) bool) error {
	s, err := d.prepare(true)
	if err != nil {
		return err
	}

	log := d.runLogger("parallel", s)
	dec := newDecoder(s, d.opts, log)
	log.V(1).Info("start", "workers", d.opts.Workers, "fields", s.Count())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Workers)

	var (
		mu        sync.Mutex
		errs      []error
		srcErr    error
		records   atomic.Int64
		discarded atomic.Int64
	)

	lineNo := 0
	for line, err := range d.src.Lines(gctx) {
		if err != nil {
			srcErr = err
			break
		}
		lineNo++
		if dec.consume(line) {
			continue
		}

		n := lineNo
		g.Go(func() error {
			obj, err := dec.decode(line, n)
			switch {
			case err != nil:
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			case obj != nil:
				records.Add(1)
				if !add(obj) {
					discarded.Add(1)
				}
			}
			return nil
		})
	}

	waitErr := g.Wait()
	log.V(1).Info("done", "lines", lineNo, "records", records.Load(), "discarded", discarded.Load(), "failed", len(errs))
	if discarded.Load() > 0 {
		log.V(1).Info("records discarded past capacity", "count", discarded.Load())
	}
	return errors.Join(append(errs, srcErr, waitErr)...)
}

// Load reads every record of d sequentially into a new collection of the given
// capacity. Records past capacity are dropped; per-line errors are joined into the
// returned error next to the filled collection.
func Load[T any](ctx context.Context, d *Deserializer[T], capacity int) (*collection.Collection[T], error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil deserializer", options.ErrInvalidArgument)
	}
	c, err := collection.New(capacity, d.table)
	if err != nil {
		return nil, err
	}

	err = d.each(ctx, func(obj *T) { c.TryAdd(obj) })
	return c, err
}

// LoadParallel is Load with the parsing fanned out over Options.Workers goroutines.
// When the input holds more records than capacity an arbitrary subset is kept.
func LoadParallel[T any](ctx context.Context, d *Deserializer[T], capacity int) (*collection.Collection[T], error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil deserializer", options.ErrInvalidArgument)
	}
	c, err := collection.New(capacity, d.table)
	if err != nil {
		return nil, err
	}

	err = d.fanOut(ctx, c.TryAdd)
	return c, err
}
