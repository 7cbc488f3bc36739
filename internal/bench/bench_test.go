//go:build unit

package bench

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wadetb/hashtable"
	"regexp"
	"strings"
	"testing"
)

func newStore(t *testing.T, kvs ...string) *hashtable.RecordStore {
	store, err := hashtable.NewRecordStore(len(kvs) + 1)
	require.NoError(t, err, "create record store")
	for _, kv := range kvs {
		k, v, _ := strings.Cut(kv, ",")
		_, err = store.Append([]byte(k), []byte(v))
		require.NoError(t, err, "append record")
	}
	return store
}

func newSequentialStore(t *testing.T, n int) *hashtable.RecordStore {
	store, err := hashtable.NewRecordStore(n)
	require.NoError(t, err, "create record store")
	for i := 0; i < n; i++ {
		_, err = store.Append([]byte(fmt.Sprintf("key%d", i)), []byte(fmt.Sprintf("%d", i)))
		require.NoError(t, err, "append record")
	}
	return store
}

func newTable(t *testing.T, store *hashtable.RecordStore) *hashtable.HashTable {
	table, _, err := hashtable.NewHashTable(store, 2, nil)
	require.NoError(t, err, "create hash table")
	return table
}

// flakyTarget - Target whose digest changes on every build
type flakyTarget struct {
	builds int
}

func (F *flakyTarget) Name() string    { return "flaky" }
func (F *flakyTarget) Build()          { F.builds++ }
func (F *flakyTarget) Check(int) error { return nil }

func (F *flakyTarget) Digest() (d [32]byte) {
	d[0] = byte(F.builds)
	return
}

func TestRun(t *testing.T) {
	t.Run("runs both phases for the table", func(t *testing.T) {
		// Prepare
		store := newSequentialStore(t, 1000)
		var progress bytes.Buffer
		cfg := Config{BuildCount: 3, SearchCount: 5000, Seed: 123456, VerifyDeterminism: true}

		// Execute
		result, err := Run(store, NewTableTarget(newTable(t, store), store), cfg, &progress)

		// Check
		require.NoError(t, err, "benchmark succeeds")
		assert.Equal(t, "table", result.Target, "target name")
		assert.Equal(t, 3, result.Build.Count, "build count")
		assert.Equal(t, 5000, result.Search.Count, "search count")
		assert.Len(t, result.Digest, 64, "hex digest")

		lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
		require.Len(t, lines, 2, "two progress lines")
		assert.Regexp(t, regexp.MustCompile(`^\[\d+\] Built table 3 times\.$`), lines[0], "build line")
		assert.Regexp(t, regexp.MustCompile(`^\[\d+\] Looked up 5000 records in table\.$`), lines[1], "search line")
	})

	t.Run("runs both phases for the map", func(t *testing.T) {
		// Prepare
		store := newSequentialStore(t, 1000)
		var progress bytes.Buffer

		// Execute
		result, err := Run(store, NewMapTarget(store), DefaultConfig(), &progress)

		// Check
		require.NoError(t, err, "benchmark succeeds")
		assert.Equal(t, "map", result.Target, "target name")
		assert.Equal(t, 10, result.Build.Count, "default build count")
		assert.Equal(t, 100000, result.Search.Count, "default search count")
		assert.Empty(t, result.Digest, "map has no digest")
		assert.Contains(t, progress.String(), "Looked up 100000 records in map.", "search line")
	})

	t.Run("skips search on empty record store", func(t *testing.T) {
		// Prepare
		store := newStore(t)

		// Execute
		result, err := Run(store, NewTableTarget(newTable(t, store), store), DefaultConfig(), &bytes.Buffer{})

		// Check
		require.NoError(t, err, "benchmark succeeds")
		assert.Zero(t, result.Search.Count, "nothing looked up")
	})

	t.Run("stops on the first failed lookup", func(t *testing.T) {
		// Prepare
		built := newStore(t, "a,1", "b,2")
		other := newStore(t, "x,1", "y,2")
		var progress bytes.Buffer

		// Execute
		_, err := Run(other, NewTableTarget(newTable(t, built), other), DefaultConfig(), &progress)

		// Check
		var iv IntegrityViolation
		require.True(t, errors.As(err, &iv), "integrity violation")
		assert.False(t, iv.Found, "key not found")
		assert.Equal(t, "table", iv.Target, "target in error")
		assert.NotContains(t, progress.String(), "Looked up", "no search line")
	})

	t.Run("detects nondeterministic builds", func(t *testing.T) {
		// Prepare
		store := newStore(t, "a,1")

		// Execute
		_, err := Run(store, &flakyTarget{}, DefaultConfig(), &bytes.Buffer{})

		// Check
		var nb NondeterministicBuild
		assert.True(t, errors.As(err, &nb), "nondeterministic build")
	})

	t.Run("gives the same lookup sequence for the same seed", func(t *testing.T) {
		// Prepare
		store := newSequentialStore(t, 100)
		r1 := &recordingTarget{}
		r2 := &recordingTarget{}
		cfg := Config{BuildCount: 1, SearchCount: 50, Seed: 42}

		// Execute
		_, err1 := Run(store, r1, cfg, &bytes.Buffer{})
		_, err2 := Run(store, r2, cfg, &bytes.Buffer{})

		// Check
		require.NoError(t, err1, "first run")
		require.NoError(t, err2, "second run")
		assert.Equal(t, r1.checked, r2.checked, "same sequence")
		for _, i := range r1.checked {
			assert.True(t, i >= 0 && i < 100, "index in range")
		}
	})

	t.Run("fails on bad configuration", func(t *testing.T) {
		// Prepare
		store := newStore(t, "a,1")

		// Execute
		_, err1 := Run(store, NewMapTarget(store), Config{BuildCount: 0, SearchCount: 1}, &bytes.Buffer{})
		_, err2 := Run(store, NewMapTarget(store), Config{BuildCount: 1, SearchCount: -1}, &bytes.Buffer{})

		// Check
		assert.Error(t, err1, "zero builds")
		assert.Error(t, err2, "negative searches")
	})
}

// recordingTarget - Target remembering which record indices were checked
type recordingTarget struct {
	checked []int
}

func (R *recordingTarget) Name() string { return "recording" }
func (R *recordingTarget) Build()       {}
func (R *recordingTarget) Check(i int) error {
	R.checked = append(R.checked, i)
	return nil
}

func TestTableTarget_Check(t *testing.T) {
	t.Run("accepts duplicate with equal value", func(t *testing.T) {
		// Prepare
		store := newStore(t, "dup,1", "dup,1")
		target := NewTableTarget(newTable(t, store), store)
		target.Build()

		// Execute
		err := target.Check(1)

		// Check
		assert.NoError(t, err, "duplicate accepted")
	})

	t.Run("rejects duplicate with other value", func(t *testing.T) {
		// Prepare
		store := newStore(t, "dup,1", "dup,2")
		target := NewTableTarget(newTable(t, store), store)
		target.Build()

		// Execute
		err := target.Check(1)

		// Check
		var iv IntegrityViolation
		require.True(t, errors.As(err, &iv), "integrity violation")
		assert.True(t, iv.Found, "key found")
		assert.Equal(t, 0, iv.Index, "earliest duplicate returned")
		assert.Equal(t, "table lookup error: dup -> 2 != 1 at index 0", iv.Error(), "error message")
	})
}

func TestMapTarget_Check(t *testing.T) {
	t.Run("finds every record", func(t *testing.T) {
		// Prepare
		store := newStore(t, "alpha,1", "beta,2")
		target := NewMapTarget(store)
		target.Build()

		// Execute & Check
		assert.NoError(t, target.Check(0), "alpha")
		assert.NoError(t, target.Check(1), "beta")
	})

	t.Run("keeps the first duplicate", func(t *testing.T) {
		// Prepare
		store := newStore(t, "dup,1", "dup,2")
		target := NewMapTarget(store)
		target.Build()

		// Execute
		err := target.Check(1)

		// Check
		var iv IntegrityViolation
		require.True(t, errors.As(err, &iv), "integrity violation")
		assert.Equal(t, "1", string(iv.Actual), "first value kept")
	})
}
