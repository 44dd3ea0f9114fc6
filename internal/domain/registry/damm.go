package registry

import "github.com/pkg/errors"

// ErrNotDigits is returned when a checksum input contains anything other than ASCII digits.
var ErrNotDigits = errors.New("input must contain only decimal digits")

// dammTable is the order-10 totally anti-symmetric quasigroup used by the Damm algorithm.
//
//nolint:gochecknoglobals
var dammTable = [10][10]byte{
	{0, 3, 1, 7, 5, 9, 8, 6, 4, 2},
	{7, 0, 9, 2, 1, 5, 4, 8, 6, 3},
	{4, 2, 0, 6, 8, 7, 1, 3, 5, 9},
	{1, 7, 5, 0, 9, 8, 3, 4, 2, 6},
	{6, 1, 2, 3, 0, 4, 5, 9, 7, 8},
	{3, 6, 7, 4, 2, 0, 9, 5, 8, 1},
	{5, 8, 6, 9, 7, 2, 0, 1, 3, 4},
	{8, 9, 4, 5, 3, 6, 2, 0, 1, 7},
	{9, 4, 3, 8, 6, 1, 7, 2, 0, 5},
	{2, 5, 8, 1, 4, 3, 6, 7, 9, 0},
}

// Checksum returns the Damm check digit for a string of decimal digits.
func Checksum(digits string) (byte, error) {
	var interim byte
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, errors.Wrapf(ErrNotDigits, "invalid character %q at position %d", c, i)
		}
		interim = dammTable[interim][c-'0']
	}

	return interim, nil
}

// Append returns digits followed by its Damm check digit.
func Append(digits string) (string, error) {
	check, err := Checksum(digits)
	if err != nil {
		return "", err
	}

	return digits + string('0'+check), nil
}

// Valid reports whether digits ends with a correct Damm check digit.
// A number carrying its own check digit always reduces to zero.
func Valid(digits string) bool {
	if digits == "" {
		return false
	}
	check, err := Checksum(digits)

	return err == nil && check == 0
}
