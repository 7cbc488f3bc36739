package main

import (
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wadetb/hashtable"
	"github.com/wadetb/hashtable/hashfunc"
	"github.com/wadetb/hashtable/internal/bench"
	"github.com/wadetb/hashtable/internal/conf"
	"io"
	"os"
	"strings"
)

const (
	exitUsage   = 1
	exitFailure = 2
)

// usageError marks errors caused by the command line rather than by the run itself.
type usageError struct {
	err error
}

func (U usageError) Error() string {
	return U.err.Error()
}

// BenchOptions bundles all options of the benchmark.
type BenchOptions struct {
	MaxRecords        int
	SlotFactor        int64
	Builds            int
	Searches          int
	Seed              int64
	Hash              string
	Probing           string
	Baseline          bool
	VerifyDeterminism bool
	JSON              string
	History           string
	LogLevel          string
}

// newCmdRoot returns the command with its own options, so every execution starts from the defaults.
func newCmdRoot() *cobra.Command {
	var opts BenchOptions

	cmd := &cobra.Command{
		Use:   "hashbench [flags] csvfile",
		Short: "Benchmark a fixed size open addressing hash table",
		Long: `
hashbench loads key,value records from a CSV file, builds an open addressing hash
table over them a number of times and looks up randomly chosen records, checking
every result. Files ending in .zst or .gz are decompressed first.

EXIT STATUS
===========

Exit status is 0 if the benchmark was successful, 1 on a usage error and 2 on
any other error, including a failed lookup.
`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{err: fmt.Errorf("expected exactly one csvfile, got %d arguments", len(args))}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(opts.LogLevel)
			if err != nil {
				return usageError{err: err}
			}
			log.SetLevel(level)

			if _, err = hashfunc.ByName(opts.Hash); err != nil {
				return usageError{err: err}
			}
			if _, err = hashtable.NewProbing(opts.Probing, nil); err != nil {
				return usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})

	f := cmd.Flags()
	f.IntVar(&opts.MaxRecords, "max-records", conf.MaxRecords, "maximum number of records in the input file")
	f.Int64Var(&opts.SlotFactor, "slot-factor", conf.SlotFactor, "number of table slots per record of capacity")
	f.IntVar(&opts.Builds, "builds", conf.BuildCount, "number of table builds")
	f.IntVar(&opts.Searches, "searches", conf.SearchCount, "number of random lookups")
	f.Int64Var(&opts.Seed, "seed", conf.SearchSeed, "seed of the random lookup sequence")
	f.StringVar(&opts.Hash, "hash", hashfunc.DefaultName, "hash function, one of "+strings.Join(hashfunc.Names(), ", "))
	f.StringVar(&opts.Probing, "probing", hashtable.LinearProbing, "collision resolution, linear or quadratic")
	f.BoolVar(&opts.Baseline, "baseline", true, "also benchmark the built-in map")
	f.BoolVar(&opts.VerifyDeterminism, "verify-determinism", true, "rebuild once more and compare slot digests")
	f.StringVar(&opts.JSON, "json", "", "write a JSON report to this path")
	f.StringVar(&opts.History, "history", "", "append the run to this SQLite database")
	f.StringVar(&opts.LogLevel, "log-level", conf.LogLevel, "log level (debug, info, warn, error)")

	return cmd
}

func (B BenchOptions) benchConfig() bench.Config {
	return bench.Config{
		BuildCount:        B.Builds,
		SearchCount:       B.Searches,
		Seed:              B.Seed,
		VerifyDeterminism: B.VerifyDeterminism,
	}
}

// execute runs the command with args and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newCmdRoot()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	log.SetOutput(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ue usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintf(stderr, "Error: %s\nUsage: %s\n", ue, cmd.UseLine())
		return exitUsage
	}

	logFailure(err)
	return exitFailure
}

// logFailure logs err, with the details of a failed lookup as fields.
func logFailure(err error) {
	var iv bench.IntegrityViolation
	if errors.As(err, &iv) {
		log.WithFields(log.Fields{
			"target":   iv.Target,
			"key":      string(iv.SearchKey),
			"expected": string(iv.Expected),
			"actual":   string(iv.Actual),
			"index":    iv.Index,
			"found":    iv.Found,
		}).Error(err)
		return
	}

	log.Error(err)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
