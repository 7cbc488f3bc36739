package main

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wadetb/hashtable"
	"github.com/wadetb/hashtable/hashfunc"
	"github.com/wadetb/hashtable/internal/bench"
	"github.com/wadetb/hashtable/internal/clock"
	"github.com/wadetb/hashtable/internal/loader"
	"github.com/wadetb/hashtable/internal/report"
	"io"
	"time"
)

func runBench(ctx context.Context, stdout io.Writer, path string, opts BenchOptions) error {
	started := time.Now()

	store, err := hashtable.NewRecordStore(opts.MaxRecords)
	if err != nil {
		return err
	}

	sw := clock.Start()
	n, err := loader.Load(path, store)
	if err != nil {
		return errors.Wrapf(err, "unable to load %s", path)
	}
	parsed := sw.Elapsed()
	_, _ = fmt.Fprintf(stdout, "[%d] Parsed %d records.\n", parsed.Ticks(), n)

	sum, err := hashfunc.ByName(opts.Hash)
	if err != nil {
		return err
	}

	hashAlgorithm, err := hashtable.NewProbing(opts.Probing, sum)
	if err != nil {
		return err
	}

	table, info, err := hashtable.NewHashTable(store, opts.SlotFactor, hashAlgorithm)
	if err != nil {
		return errors.Wrap(err, "unable to create hash table")
	}

	log.WithFields(log.Fields{
		"hash":     opts.Hash,
		"probing":  opts.Probing,
		"capacity": info.Capacity,
		"slots":    info.NumberOfSlots,
		"max_load": info.MaxLoadFactor,
	}).Debug("hash table created")

	targets := []bench.Target{bench.NewTableTarget(table, store)}
	if opts.Baseline {
		targets = append(targets, bench.NewMapTarget(store))
	}

	r := report.Report{
		Started:       started,
		Input:         path,
		Hash:          opts.Hash,
		Probing:       opts.Probing,
		Records:       n,
		Capacity:      info.Capacity,
		NumberOfSlots: info.NumberOfSlots,
		ParseTicks:    parsed.Ticks(),
	}

	for _, target := range targets {
		var result bench.Result
		result, err = bench.Run(store, target, opts.benchConfig(), stdout)
		if err != nil {
			return err
		}
		r.Results = append(r.Results, result)
	}

	stat := table.Stat()
	r.Table = &stat
	log.WithFields(log.Fields{
		"occupied":   stat.Occupied,
		"load":       stat.LoadFactor,
		"max_probe":  stat.MaxProbeLength,
		"mean_probe": stat.MeanProbeLength,
	}).Info("table statistics")

	return saveReport(ctx, r, opts)
}

// saveReport writes the JSON report and appends the run to the history, whichever was asked for.
func saveReport(ctx context.Context, r report.Report, opts BenchOptions) (err error) {
	if opts.JSON != "" {
		if err = report.WriteJSON(opts.JSON, r); err != nil {
			return
		}
	}

	if opts.History == "" {
		return
	}

	history, err := report.OpenHistory(ctx, opts.History)
	if err != nil {
		return
	}
	defer func() {
		if cErr := history.Close(); cErr != nil && err == nil {
			err = errors.Wrap(cErr, "unable to close history")
		}
	}()

	runID, err := history.Record(ctx, r)
	if err != nil {
		return
	}
	log.WithField("run", runID).Info("run added to history")

	return
}
