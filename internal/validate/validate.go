// Package validate holds the field-level input checks shared by the create
// and update handlers.  Each function takes the raw decoded JSON value and
// returns either the normalized typed value or an error whose text is the
// exact rejection message surfaced to the client.
package validate

import (
	"fmt"
	"strconv"
	"time"
)

// releaseDateInput is the accepted wire format for release dates.  The
// non-padded layout also accepts zero-padded fields ("2020/01/04").
const releaseDateInput = "2006/1/2"

// ErrReleaseDate is returned for any release date that does not parse as
// YYYY/M/D: wrong separator, missing parts, non-numeric parts or an
// out-of-range calendar date.
var ErrReleaseDate = fmt.Errorf("Error in release date field format")

// ReleaseDate checks a raw release date value and returns it normalized to
// an ISO date string suitable for storage.
func ReleaseDate(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", ErrReleaseDate
	}
	t, err := time.Parse(releaseDateInput, s)
	if err != nil {
		return "", ErrReleaseDate
	}
	return t.Format("2006-01-02"), nil
}

// Age checks a raw age value.  JSON numbers and numeric strings are both
// accepted; the value must be a strictly positive integer.
func Age(raw any) (int, error) {
	reject := func() (int, error) {
		return 0, fmt.Errorf("Invalid value '%v' for Int() age field", raw)
	}
	var age int
	switch v := raw.(type) {
	case float64:
		age = int(v)
	case int:
		age = v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return reject()
		}
		age = n
	default:
		return reject()
	}
	if age <= 0 {
		return reject()
	}
	return age, nil
}

// Gender checks a raw gender value.  Only the exact strings "male" and
// "female" are accepted.
func Gender(raw any) (string, error) {
	if s, ok := raw.(string); ok && (s == "male" || s == "female") {
		return s, nil
	}
	return "", fmt.Errorf("Invalid value '%v' for gender, acceptable values are male/female", raw)
}
