package loader

import (
	"bytes"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wadetb/hashtable"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load - Reads the file at path and parses its records into store.
// Files ending in .zst are zstd compressed and files ending in .gz are gzip compressed, anything else is plain text.
//
// It returns:
//   - n is the number of records appended
//   - err is an I/O or decompression error, or the error from Parse
func Load(path string, store *hashtable.RecordStore) (n int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "unable to open input file")
	}

	data, err = decompress(path, data)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{"path": path, "bytes": len(data)}).Debug("input loaded")

	return Parse(data, store)
}

// decompress - Returns data decoded according to the file name extension of path
func decompress(path string, data []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, errors.Wrap(err, "zstd.NewReader")
		}
		defer dec.Close()

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decompress %s", path)
		}
		return out, nil

	case ".gz":
		rd, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decompress %s", path)
		}
		defer func() { _ = rd.Close() }()

		out, err := io.ReadAll(rd)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decompress %s", path)
		}
		return out, nil
	}

	return data, nil
}
