package hufftap

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when a Huffman tree is requested for an
	// empty frequency table, i.e. the input to compress had zero bytes.
	ErrEmptyInput = errors.New("empty input")

	// ErrByteConversion is returned when a bit sequence handed to the byte
	// packer contains an element other than 0 or 1.
	ErrByteConversion = errors.New("bit sequence element is not 0 or 1")

	// ErrInvalidCodeTable is returned when an externally supplied code
	// table fails validation.
	ErrInvalidCodeTable = errors.New("invalid code table")
)
