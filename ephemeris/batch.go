package ephemeris

import (
	"fmt"

	"github.com/danvip10/tudat/parsed"
	kitlog "github.com/go-kit/kit/log"
)

// Batch extracts the states of several records.
type Batch struct {
	Extractor   CartesianStateExtractor
	SkipInvalid bool // skip records which fail extraction instead of aborting
	Logger      kitlog.Logger
}

// NewBatch returns a new Batch which logs to the provided logger (may be nil).
func NewBatch(extractor CartesianStateExtractor, skipInvalid bool, logger kitlog.Logger) *Batch {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Batch{extractor, skipInvalid, kitlog.With(logger, "subsys", "extract")}
}

// ExtractAll returns the states of all the records, in order.
// Unless SkipInvalid is set, the first failing record aborts the batch and no state is returned.
func (b *Batch) ExtractAll(records []parsed.Record) ([]*CartesianState, error) {
	states := make([]*CartesianState, 0, len(records))
	err := b.ExtractEach(records, func(recNo int, state *CartesianState) error {
		states = append(states, state)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

// ExtractEach calls fn with the index of each record and its state, in order.
// Failing records are skipped or abort the batch as in ExtractAll, and an error from fn stops it.
func (b *Batch) ExtractEach(records []parsed.Record, fn func(recNo int, state *CartesianState) error) error {
	logger := b.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	extracted := 0
	for recNo, rec := range records {
		state, err := b.Extractor.Extract(rec)
		if err != nil {
			if !b.SkipInvalid {
				return fmt.Errorf("record %d: %w", recNo, err)
			}
			logger.Log("level", "warning", "record", recNo, "status", "skipped", "err", err)
			continue
		}
		if err := fn(recNo, state); err != nil {
			return err
		}
		extracted++
	}
	logger.Log("level", "info", "records", len(records), "states", extracted)
	return nil
}

// Records converts parsed data lines to Records.
func Records(lines []parsed.DataLineMap) []parsed.Record {
	records := make([]parsed.Record, len(lines))
	for i, line := range lines {
		records[i] = line
	}
	return records
}
