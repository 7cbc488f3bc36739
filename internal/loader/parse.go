// Package loader reads key,value records from delimited text into a hashtable.RecordStore.
package loader

import (
	"bytes"
	"github.com/wadetb/hashtable"
)

// Parse - Appends every complete record in data to store, in order.
// A record is "key,value" ending in \n or \r\n. Whitespace before a record is skipped, the first comma separates key
// from value and the value ends at the first \r or \n. A trailing record without comma or line terminator is
// dropped silently, and parsing stops at a 0x00 byte.
//
// It returns:
//   - n is the number of records appended
//   - err is the error from store.Append, typically hashtable.CapacityExceeded
func Parse(data []byte, store *hashtable.RecordStore) (n int, err error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	pos := 0
	for pos < len(data) {
		for pos < len(data) && isSpace(data[pos]) {
			pos++
		}

		comma := bytes.IndexByte(data[pos:], ',')
		if comma < 0 {
			break
		}
		key := data[pos : pos+comma]
		pos += comma + 1

		newline := bytes.IndexAny(data[pos:], "\r\n")
		if newline < 0 {
			break
		}
		value := data[pos : pos+newline]
		pos += newline + 1

		_, err = store.Append(key, value)
		if err != nil {
			return
		}
		n++
	}

	return
}

// isSpace - Reports whether c is ASCII white space as the C locale defines it
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
