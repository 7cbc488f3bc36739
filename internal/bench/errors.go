package bench

import "fmt"

// IntegrityViolation - Custom error to inform that a lookup did not return the record it was searched for
//   - Target is the name of the target that failed
//   - SearchKey is the key that was looked up
//   - Expected is the value of the record the key was taken from
//   - Actual is the value that was found, empty if nothing was found
//   - Index is the record index returned by the lookup, -1 if the target does not report indices
//   - Found is false if the lookup reported the key as absent
type IntegrityViolation struct {
	Target    string
	SearchKey []byte
	Expected  []byte
	Actual    []byte
	Index     int
	Found     bool
}

// Error - Used to notify a lookup error
func (I IntegrityViolation) Error() string {
	if !I.Found {
		return fmt.Sprintf("%s lookup error: %s -> %s not found", I.Target, I.SearchKey, I.Expected)
	}
	return fmt.Sprintf("%s lookup error: %s -> %s != %s at index %d", I.Target, I.SearchKey, I.Expected, I.Actual, I.Index)
}

// NondeterministicBuild - Custom error to inform that two builds from the same records gave different slot placement
type NondeterministicBuild struct {
	Target string
}

// Error - Used to notify a nondeterministic build
func (N NondeterministicBuild) Error() string {
	return fmt.Sprintf("%s builds are not deterministic", N.Target)
}
