// Package bench drives the build and search phases of a benchmark and validates every lookup.
package bench

import (
	"encoding/hex"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/wadetb/hashtable"
	"github.com/wadetb/hashtable/internal/clock"
	"github.com/wadetb/hashtable/internal/conf"
	"io"
	"math/rand"
	"time"
)

// Config - Parameters of a benchmark run
//   - BuildCount is the number of full rebuilds in the build phase, at least 1
//   - SearchCount is the number of lookups in the search phase
//   - Seed seeds the pseudo random sequence of record indices to look up
//   - VerifyDeterminism rebuilds a Digester target once more after the build phase and compares digests
type Config struct {
	BuildCount        int
	SearchCount       int
	Seed              int64
	VerifyDeterminism bool
}

// DefaultConfig - Returns the default benchmark parameters
func DefaultConfig() Config {
	return Config{
		BuildCount:        conf.BuildCount,
		SearchCount:       conf.SearchCount,
		Seed:              conf.SearchSeed,
		VerifyDeterminism: true,
	}
}

// Phase - Measurement of one phase
type Phase struct {
	Count int           `json:"count"`
	Ticks int64         `json:"ticks"`
	CPU   time.Duration `json:"cpu_ns"`
	Wall  time.Duration `json:"wall_ns"`
}

// Result - Measurements of one target
type Result struct {
	Target string `json:"target"`
	Build  Phase  `json:"build"`
	Search Phase  `json:"search"`
	Digest string `json:"digest,omitempty"`
}

// Run - Runs the build phase and the search phase for target and writes a progress line after each phase.
//   - records is the record store target was created from
//   - target is the container under benchmark
//   - cfg holds the benchmark parameters
//   - progress receives the progress lines
//
// It returns:
//   - result holds the measurements of both phases
//   - err is an IntegrityViolation on the first failed lookup, or NondeterministicBuild
func Run(records *hashtable.RecordStore, target Target, cfg Config, progress io.Writer) (result Result, err error) {
	if cfg.BuildCount < 1 {
		err = fmt.Errorf("build count must be at least 1")
		return
	}
	if cfg.SearchCount < 0 {
		err = fmt.Errorf("search count can not be negative")
		return
	}

	result.Target = target.Name()

	result.Build = buildPhase(target, cfg.BuildCount)
	_, _ = fmt.Fprintf(progress, "[%d] Built %s %d times.\n", result.Build.Ticks, target.Name(), result.Build.Count)

	if d, ok := target.(Digester); ok {
		digest := d.Digest()
		result.Digest = hex.EncodeToString(digest[:])

		if cfg.VerifyDeterminism {
			target.Build()
			if d.Digest() != digest {
				err = NondeterministicBuild{Target: target.Name()}
				return
			}
		}
	}

	result.Search, err = searchPhase(records, target, cfg.SearchCount, cfg.Seed)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(progress, "[%d] Looked up %d records in %s.\n", result.Search.Ticks, result.Search.Count, target.Name())

	log.WithFields(log.Fields{
		"target":      target.Name(),
		"build_wall":  result.Build.Wall,
		"search_wall": result.Search.Wall,
		"digest":      result.Digest,
	}).Debug("benchmark finished")

	return
}

// buildPhase - Rebuilds target count times
func buildPhase(target Target, count int) Phase {
	sw := clock.Start()
	for i := 0; i < count; i++ {
		target.Build()
	}

	return newPhase(count, sw.Elapsed())
}

// searchPhase - Checks count records picked by a pseudo random sequence seeded with seed.
// An empty record store has nothing to pick from and gives a phase with count 0.
func searchPhase(records *hashtable.RecordStore, target Target, count int, seed int64) (phase Phase, err error) {
	n := records.Len()
	if n == 0 {
		log.WithField("target", target.Name()).Debug("no records, search phase skipped")
		return
	}

	rng := rand.New(rand.NewSource(seed))

	sw := clock.Start()
	for i := 0; i < count; i++ {
		err = target.Check(rng.Intn(n))
		if err != nil {
			return
		}
	}

	phase = newPhase(count, sw.Elapsed())

	return
}

func newPhase(count int, s clock.Sample) Phase {
	return Phase{Count: count, Ticks: s.Ticks(), CPU: s.CPU, Wall: s.Wall}
}
