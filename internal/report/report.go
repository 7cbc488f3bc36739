// Package report writes benchmark results as JSON and keeps a history of runs in SQLite.
package report

import (
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
	"github.com/wadetb/hashtable"
	"github.com/wadetb/hashtable/internal/bench"
	"os"
	"time"
)

// Report - Everything measured in one benchmark run
type Report struct {
	Started       time.Time                `json:"started"`
	Input         string                   `json:"input"`
	Hash          string                   `json:"hash"`
	Probing       string                   `json:"probing"`
	Records       int                      `json:"records"`
	Capacity      int                      `json:"capacity"`
	NumberOfSlots int64                    `json:"number_of_slots"`
	ParseTicks    int64                    `json:"parse_ticks"`
	Table         *hashtable.HashTableStat `json:"table,omitempty"`
	Results       []bench.Result           `json:"results"`
}

// WriteJSON - Writes r to path as JSON, replacing any existing file
func WriteJSON(path string, r Report) error {
	buf, err := sonnet.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "sonnet.Marshal")
	}

	if err = os.WriteFile(path, append(buf, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "unable to write report %s", path)
	}

	return nil
}

// ReadJSON - Reads a report written by WriteJSON
func ReadJSON(path string) (r Report, err error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return r, errors.Wrapf(err, "unable to read report %s", path)
	}

	if err = sonnet.Unmarshal(buf, &r); err != nil {
		return r, errors.Wrapf(err, "unable to decode report %s", path)
	}

	return r, nil
}
