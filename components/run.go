package components

import (
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"bst_map/pkg/bst"
	"bst_map/pkg/mapping"
	"bst_map/pkg/rbmap"
	"bst_map/pkg/util"
)

// Build creates an empty map of the given implementation and fills it.
func Build(impl string, records iter.Seq2[string, string], inserted *atomic.Int64) (mapping.Map[string, string], error) {
	var m mapping.Map[string, string]
	switch impl {
	case ImplBST:
		m = bst.New[string, string]()
	case ImplRBTree:
		m = rbmap.New[string, string]()
	default:
		return nil, fmt.Errorf("%w: unknown impl %q", ErrInvalidConfig, impl)
	}

	for k, v := range records {
		m.Insert(k, v)
		if inserted != nil {
			inserted.Add(1)
		}
	}
	return m, nil
}

// Run loads the dataset, performs the configured lookups and removals and
// reports what happened.
func Run(cfg *Config, logger zerolog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records, err := Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", cfg.DataPath).Int("records", len(records)).Msg("dataset loaded")

	inserted := &atomic.Int64{}
	if cfg.Progress > 0 {
		stop := util.SetInterval(func(start, now time.Time) {
			logger.Info().
				Int64("inserted", inserted.Load()).
				Dur("elapsed", now.Sub(start)).
				Msg("building")
		}, cfg.Progress)
		defer stop()
	}

	m, err := Build(cfg.Impl, Records(records), inserted)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("impl", cfg.Impl).Int("size", m.Size()).Msg("map built")

	report := &Report{
		Impl:   cfg.Impl,
		Loaded: len(records),
	}

	for _, key := range cfg.Lookups {
		val, err := m.Search(key)
		lookup := Lookup{
			Key:           key,
			Value:         val,
			Found:         err == nil,
			Comparisons:   m.LastComparisons(),
			ElapsedMillis: m.LastElapsedMillis(),
		}
		report.Lookups = append(report.Lookups, lookup)

		var event *zerolog.Event
		if err != nil {
			event = logger.Warn().Err(err)
		} else {
			event = logger.Info()
		}
		event.
			Str("key", key).
			Int("comparisons", lookup.Comparisons).
			Float64("elapsed_ms", lookup.ElapsedMillis).
			Msg("search")
	}

	for _, key := range cfg.Removals {
		val, ok := m.Remove(key)
		report.Removals = append(report.Removals, Removal{Key: key, Value: val, Removed: ok})
		logger.Info().Str("key", key).Bool("removed", ok).Int("size", m.Size()).Msg("remove")
	}

	report.Size = m.Size()
	report.Ordered = m.String()
	logger.Debug().Str("keys", report.Ordered).Msg("in-order keys")

	return report, nil
}
