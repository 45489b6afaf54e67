package utils

import (
	"bytes"
	"strconv"
)

// maxSafeInteger is the largest integer a JSON consumer using IEEE-754
// doubles can represent exactly.
const maxSafeInteger = 1<<53 - 1

// SafeInt64 encodes as a JSON number inside the safe range and as a string outside it.
type SafeInt64 int64

func (v SafeInt64) MarshalJSON() ([]byte, error) {
	n := int64(v)
	s := strconv.FormatInt(n, 10)
	if n > maxSafeInteger || n < -maxSafeInteger {
		return []byte(`"` + s + `"`), nil
	}
	return []byte(s), nil
}

func (v *SafeInt64) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*v = SafeInt64(n)
	return nil
}

func (v SafeInt64) String() string {
	return strconv.FormatInt(int64(v), 10)
}
