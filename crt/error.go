package crt

// TableFull - Custom error to inform that every slot is occupied and no more records can be inserted.
// It can only happen if more records are inserted than the table was sized for.
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "hash table full"
	}
	return T.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm gave up
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// RecordIndexOutOfRange - Custom error to inform that a record index does not refer to a record of the key source
type RecordIndexOutOfRange struct {
	msg string
}

// Error - Used to notify that a record index can not be stored in a slot
func (R RecordIndexOutOfRange) Error() string {
	if R.msg == "" {
		return "record index out of range"
	}
	return R.msg
}
