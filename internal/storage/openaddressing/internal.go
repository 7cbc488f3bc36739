package openaddressing

import (
	"bytes"
	"encoding/binary"
	"github.com/minio/sha256-simd"
	"github.com/wadetb/hashtable/crt"
	"github.com/wadetb/hashtable/internal/model"
)

// digestChunkSlots - Number of slots encoded per write into the digest
const digestChunkSlots = 4096

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a record.
func (O *OASlots) probingForGet(key []byte) (slot int64, recordIndex int, ok bool) {
	var probe, n int64
	var v uint32

	hf1Value := O.hashAlgorithm.HashFunc1(key)

	iMax := O.numberOfSlotsAvailable * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < O.numberOfSlotsAvailable && probe >= 0 {
			v = O.slots[probe]
			if v == model.SlotEmpty {
				return
			}

			if bytes.Equal(key, O.keys.Key(int(v-1))) {
				return probe, int(v - 1), true
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= O.numberOfSlotsAvailable {
				return
			}
		}
	}

	// Failsafe, a probing function that keeps returning out of range slots finds nothing
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding an empty slot.
func (O *OASlots) probingForSet(key []byte) (slot int64, err error) {
	var probe, n int64

	hf1Value := O.hashAlgorithm.HashFunc1(key)

	iMax := O.numberOfSlotsAvailable * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < O.numberOfSlotsAvailable && probe >= 0 {
			if O.slots[probe] == model.SlotEmpty {
				slot = probe
				return
			}

			n++
			if n >= O.numberOfSlotsAvailable {
				err = crt.TableFull{}
				return
			}
		}
	}

	err = crt.ProbingAlgorithm{}
	return
}

// digestSlots - Hashes the slots in little endian order
func digestSlots(slots []uint32) (sum [32]byte) {
	h := sha256.New()
	buf := make([]byte, 0, 4*digestChunkSlots)

	for len(slots) > 0 {
		chunk := slots
		if len(chunk) > digestChunkSlots {
			chunk = chunk[:digestChunkSlots]
		}
		slots = slots[len(chunk):]

		buf = buf[:0]
		for _, v := range chunk {
			buf = binary.LittleEndian.AppendUint32(buf, v)
		}
		_, _ = h.Write(buf)
	}

	copy(sum[:], h.Sum(nil))

	return
}
