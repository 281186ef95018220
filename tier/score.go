package tier

import (
	"errors"
	"strconv"
	"strings"
)

// ScoreMarker prefixes a benchmark score embedded in a device name, as in
// "NVIDIA GeForce (3DMARK-14532)".
const ScoreMarker = "3DMARK-"

var errUnterminated = errors.New("missing closing ')'")

// ParseEmbeddedCapabilityScore extracts the score embedded in deviceName.
// found is false when the marker is absent. A marker followed by anything
// other than digits up to the next ')' is reported as a *ParseError.
func ParseEmbeddedCapabilityScore(deviceName string) (score Score, found bool, err error) {
	start := strings.Index(deviceName, ScoreMarker)
	if start < 0 {
		return 0, false, nil
	}
	start += len(ScoreMarker)

	end := strings.IndexByte(deviceName[start:], ')')
	if end < 0 {
		return 0, true, &ParseError{Input: deviceName, Fragment: deviceName[start:], Err: errUnterminated}
	}
	fragment := deviceName[start : start+end]

	// ParseUint rejects signs and anything non-decimal; 63 bits keeps the
	// value inside a non-negative int64.
	v, err := strconv.ParseUint(fragment, 10, 63)
	if err != nil {
		return 0, true, &ParseError{Input: deviceName, Fragment: fragment, Err: err}
	}
	return Score(v), true, nil
}
