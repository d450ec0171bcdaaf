package hufftap

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	archiveMagic   = "HTAP"
	archiveVersion = uint16(1)

	maxArchivePackedBytes = 1 << 30 // 1 GiB
	maxArchiveDataBytes   = uint64(1) << 40
)

// Wire format (version 1):
//
//	magic[4]   = "HTAP"
//	version    = uint16 little-endian
//	dataLen    = uint64 little-endian, original input length in bytes
//	packedLen  = uint32 little-endian
//	packed     = packedLen bytes
//	entryCount = uint16 little-endian
//	repeat entryCount times:
//	  value = uint8
//	  size  = uint8, code length in bits
//	  bits  = uint64 little-endian, code bits right-aligned
//
// dataLen is carried so that Stats can be rebuilt on read and so that a
// degenerate single-code archive still decodes to the right length.
// WriteTo emits table entries in ascending byte-value order; ReadFrom
// accepts any order but rejects duplicate values.

// WriteTo serializes the Result to w in the archive wire format.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	dataLen := uint64(r.Stats.DataSizeBits) / 8
	if dataLen == 0 {
		return 0, fmt.Errorf("refusing to write an archive for zero-length input")
	}
	if dataLen > maxArchiveDataBytes {
		return 0, fmt.Errorf("original length too large: %d", dataLen)
	}
	if len(r.Packed) > maxArchivePackedBytes {
		return 0, fmt.Errorf("packed payload too large: %d", len(r.Packed))
	}
	if r.Table.Len() == 0 {
		return 0, fmt.Errorf("refusing to write an archive with an empty code table")
	}

	var total int64
	n, err := w.Write([]byte(archiveMagic))
	total += int64(n)
	if err != nil {
		return total, err
	}

	if err := binary.Write(w, binary.LittleEndian, archiveVersion); err != nil {
		return total, err
	}
	total += 2

	if err := binary.Write(w, binary.LittleEndian, dataLen); err != nil {
		return total, err
	}
	total += 8

	if err := binary.Write(w, binary.LittleEndian, uint32(len(r.Packed))); err != nil {
		return total, err
	}
	total += 4

	n, err = w.Write(r.Packed)
	total += int64(n)
	if err != nil {
		return total, err
	}

	if err := binary.Write(w, binary.LittleEndian, uint16(r.Table.Len())); err != nil {
		return total, err
	}
	total += 2

	for _, value := range r.Table.values() {
		hc, _ := r.Table.Code(value)
		if err := binary.Write(w, binary.LittleEndian, value); err != nil {
			return total, err
		}
		total++
		if err := binary.Write(w, binary.LittleEndian, hc.Size); err != nil {
			return total, err
		}
		total++
		if err := binary.Write(w, binary.LittleEndian, hc.Bits); err != nil {
			return total, err
		}
		total += 8
	}

	return total, nil
}

// ReadFrom parses an archive from src, replacing the receiver only after
// the whole archive has been read and validated.  The code table goes
// through the same checks as NewCodeTable, so a corrupt archive cannot
// smuggle in duplicate or malformed codes.
func (r *Result) ReadFrom(src io.Reader) (int64, error) {
	var total int64

	var magic [4]byte
	n, err := io.ReadFull(src, magic[:])
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("read archive magic: %w", err)
	}
	if string(magic[:]) != archiveMagic {
		return total, fmt.Errorf("invalid archive magic: %q", string(magic[:]))
	}

	var version uint16
	if err := binary.Read(src, binary.LittleEndian, &version); err != nil {
		return total, fmt.Errorf("read archive version: %w", err)
	}
	total += 2
	if version != archiveVersion {
		return total, fmt.Errorf("unsupported archive version: %d", version)
	}

	var dataLen uint64
	if err := binary.Read(src, binary.LittleEndian, &dataLen); err != nil {
		return total, fmt.Errorf("read original length: %w", err)
	}
	total += 8
	if dataLen == 0 || dataLen > maxArchiveDataBytes {
		return total, fmt.Errorf("invalid original length: %d", dataLen)
	}

	var packedLen uint32
	if err := binary.Read(src, binary.LittleEndian, &packedLen); err != nil {
		return total, fmt.Errorf("read packed length: %w", err)
	}
	total += 4
	if packedLen == 0 || packedLen > maxArchivePackedBytes {
		return total, fmt.Errorf("invalid packed length: %d", packedLen)
	}

	packed := make([]byte, packedLen)
	n, err = io.ReadFull(src, packed)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("read packed payload of %d bytes: %w", packedLen, err)
	}

	var entryCount uint16
	if err := binary.Read(src, binary.LittleEndian, &entryCount); err != nil {
		return total, fmt.Errorf("read table entry count: %w", err)
	}
	total += 2
	if entryCount == 0 || entryCount > 256 {
		return total, fmt.Errorf("invalid table entry count: %d", entryCount)
	}

	codes := make(map[byte]Code, entryCount)
	for i := 0; i < int(entryCount); i++ {
		var value, size uint8
		var bits uint64
		if err := binary.Read(src, binary.LittleEndian, &value); err != nil {
			return total, fmt.Errorf("read table entry %d: %w", i, err)
		}
		total++
		if err := binary.Read(src, binary.LittleEndian, &size); err != nil {
			return total, fmt.Errorf("read table entry %d: %w", i, err)
		}
		total++
		if err := binary.Read(src, binary.LittleEndian, &bits); err != nil {
			return total, fmt.Errorf("read table entry %d: %w", i, err)
		}
		total += 8
		if _, dup := codes[value]; dup {
			return total, fmt.Errorf("duplicate table entry for byte %d", value)
		}
		codes[value] = MakeCode(size, bits)
	}

	table, err := NewCodeTable(codes)
	if err != nil {
		return total, fmt.Errorf("archive code table rejected: %w", err)
	}

	*r = Result{
		Packed: packed,
		Table:  table,
		Stats:  NewStats(int(dataLen), len(packed)),
	}
	return total, nil
}

var _ io.WriterTo = Result{}
var _ io.ReaderFrom = (*Result)(nil)
