// Package registry builds and checks academic registry numbers.
//
// A registry number is ten decimal digits: the four-digit calendar year the
// account was created in, a five-digit sequence within that year, and a
// trailing Damm check digit computed over the first nine digits.
package registry

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// Length is the number of digits in a complete registry number.
	Length = 10
	// MaxSequence is the highest sequence a single year can issue.
	MaxSequence = 99999

	yearDigits     = 4
	sequenceDigits = 5
	minYear        = 1000
	maxYear        = 9999
)

var (
	// ErrSequenceOutOfRange is returned for sequences outside 1..MaxSequence.
	ErrSequenceOutOfRange = errors.New("registry sequence out of range")
	// ErrYearOutOfRange is returned for years that do not have exactly four digits.
	ErrYearOutOfRange = errors.New("registry year out of range")
	// ErrMalformed is returned when a registry number has the wrong shape or check digit.
	ErrMalformed = errors.New("malformed registry number")
)

// Generate returns the registry number for the given year and sequence.
func Generate(year, sequence int) (string, error) {
	if year < minYear || year > maxYear {
		return "", errors.Wrapf(ErrYearOutOfRange, "year %d", year)
	}
	if sequence < 1 || sequence > MaxSequence {
		return "", errors.Wrapf(ErrSequenceOutOfRange, "sequence %d", sequence)
	}

	base := year*100000 + sequence

	return Append(strconv.Itoa(base))
}

// Prefix returns the leading year digits shared by every registry number of that year.
func Prefix(year int) string {
	return fmt.Sprintf("%0*d", yearDigits, year)
}

// Parse splits a registry number into its year and sequence after checking its shape and check digit.
func Parse(id string) (year, sequence int, err error) {
	if err := Validate(id); err != nil {
		return 0, 0, err
	}

	year, _ = strconv.Atoi(id[:yearDigits])
	sequence, _ = strconv.Atoi(id[yearDigits : yearDigits+sequenceDigits])

	return year, sequence, nil
}

// Validate reports whether id is a well-formed registry number.
func Validate(id string) error {
	if len(id) != Length {
		return errors.Wrapf(ErrMalformed, "expected %d digits, got %d", Length, len(id))
	}
	if _, err := Checksum(id); err != nil {
		return errors.Wrap(ErrMalformed, err.Error())
	}
	if !Valid(id) {
		return errors.Wrapf(ErrMalformed, "check digit mismatch in %s", id)
	}

	return nil
}
