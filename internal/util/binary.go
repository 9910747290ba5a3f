package util

import (
	"fmt"

	"github.com/dekarrin/rezi"
)

// EncString encodes s as a length-prefixed byte sequence suitable for
// concatenation into a larger binary-encoded value.
func EncString(s string) []byte {
	b, _ := rezi.Enc(s)
	return b
}

// DecString decodes a string previously written by EncString from the front
// of data, returning the value and the number of bytes consumed.
func DecString(data []byte) (string, int, error) {
	var s string
	n, err := rezi.Dec(data, &s)
	if err != nil {
		return "", 0, fmt.Errorf("decoding string: %w", err)
	}
	return s, n, nil
}

// EncInt encodes i as a length-prefixed byte sequence suitable for
// concatenation into a larger binary-encoded value.
func EncInt(i int) []byte {
	b, _ := rezi.Enc(i)
	return b
}

// DecInt decodes an int previously written by EncInt from the front of data,
// returning the value and the number of bytes consumed.
func DecInt(data []byte) (int, int, error) {
	var i int
	n, err := rezi.Dec(data, &i)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding int: %w", err)
	}
	return i, n, nil
}

// EncStringSlice encodes a []string as a count followed by each element.
func EncStringSlice(ss []string) []byte {
	data := EncInt(len(ss))
	for _, s := range ss {
		data = append(data, EncString(s)...)
	}
	return data
}

// DecStringSlice decodes a []string previously written by EncStringSlice.
func DecStringSlice(data []byte) ([]string, int, error) {
	count, n, err := DecInt(data)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding string slice count: %w", err)
	}
	total := n
	data = data[n:]

	ss := make([]string, count)
	for i := 0; i < count; i++ {
		s, n, err := DecString(data)
		if err != nil {
			return nil, 0, fmt.Errorf("decoding string slice element %d: %w", i, err)
		}
		ss[i] = s
		total += n
		data = data[n:]
	}
	return ss, total, nil
}
