package hufftap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable is the bidirectional mapping between byte values and their
// Huffman codes.  The forward direction (byte value to Code) is the
// authoritative one; the inverse is derived at construction and the two are
// always consistent.  A CodeTable is immutable once built and is safe to
// read from any number of goroutines.
type CodeTable struct {
	forward map[byte]Code
	inverse map[Code]byte
}

// BuildCodeTable derives the code table from a Huffman tree.  Descending
// from the root, each left edge appends a 0 and each right edge appends a
// 1, and the accumulated path becomes the code of the byte value at each
// leaf.  A root that is itself a leaf yields the zero-length code for its
// value.
func BuildCodeTable(root *TreeNode) CodeTable {
	forward := make(map[byte]Code)
	walkTree(root, Code{}, forward)
	table, err := NewCodeTable(forward)
	assert.Assertf(err == nil, "tree-derived table failed validation: %v", err)
	return table
}

func walkTree(node *TreeNode, path Code, forward map[byte]Code) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		forward[node.Value] = path
		return
	}
	assert.Assertf(path.Size < maxCodeBits, "tree deeper than %d levels", maxCodeBits)
	walkTree(node.Left, path.AppendBit(0), forward)
	walkTree(node.Right, path.AppendBit(1), forward)
}

// NewCodeTable builds a code table from an explicit byte-to-code mapping,
// checking what a tree-derived table guarantees by construction: every code
// fits in 64 bits with no spurious bits beyond its stated size, no two byte
// values share a code, and a zero-length code appears only as the sole
// entry of a one-value table.  Violations are reported as
// ErrInvalidCodeTable.
func NewCodeTable(codes map[byte]Code) (CodeTable, error) {
	forward := make(map[byte]Code, len(codes))
	inverse := make(map[Code]byte, len(codes))
	for value, hc := range codes {
		if int(hc.Size) > maxCodeBits {
			return CodeTable{}, fmt.Errorf("%w: code for byte %d is %d bits long, max %d", ErrInvalidCodeTable, value, hc.Size, maxCodeBits)
		}
		if hc.Bits>>hc.Size != 0 {
			return CodeTable{}, fmt.Errorf("%w: code for byte %d has bits beyond its %d-bit size", ErrInvalidCodeTable, value, hc.Size)
		}
		if hc.Size == 0 && len(codes) > 1 {
			return CodeTable{}, fmt.Errorf("%w: zero-length code for byte %d in a table of %d entries", ErrInvalidCodeTable, value, len(codes))
		}
		if other, found := inverse[hc]; found {
			return CodeTable{}, fmt.Errorf("%w: bytes %d and %d share code %q", ErrInvalidCodeTable, other, value, hc.String())
		}
		forward[value] = hc
		inverse[hc] = value
	}
	return CodeTable{forward: forward, inverse: inverse}, nil
}

// CodeTableFromStrings builds a code table from its textual exchange form,
// one string of '0' and '1' characters per byte value.
func CodeTableFromStrings(codes map[byte]string) (CodeTable, error) {
	parsed := make(map[byte]Code, len(codes))
	for value, s := range codes {
		hc, err := ParseCode(s)
		if err != nil {
			return CodeTable{}, fmt.Errorf("%w: byte %d: %v", ErrInvalidCodeTable, value, err)
		}
		parsed[value] = hc
	}
	return NewCodeTable(parsed)
}

// Code returns the code assigned to the given byte value.
func (t CodeTable) Code(value byte) (Code, bool) {
	hc, found := t.forward[value]
	return hc, found
}

// Value returns the byte value assigned to the given code.
func (t CodeTable) Value(hc Code) (byte, bool) {
	value, found := t.inverse[hc]
	return value, found
}

// Len returns the number of byte values in the table.
func (t CodeTable) Len() int {
	return len(t.forward)
}

// Strings returns the table in its textual exchange form.
func (t CodeTable) Strings() map[byte]string {
	out := make(map[byte]string, len(t.forward))
	for value, hc := range t.forward {
		out[value] = hc.String()
	}
	return out
}

// soleZeroEntry reports the byte value of a degenerate one-entry table
// whose single code is zero-length.
func (t CodeTable) soleZeroEntry() (byte, bool) {
	if len(t.forward) != 1 {
		return 0, false
	}
	for value, hc := range t.forward {
		if hc.Size == 0 {
			return value, true
		}
	}
	return 0, false
}

// values returns the byte values present in the table, sorted ascending.
func (t CodeTable) values() []byte {
	out := make(byteList, 0, len(t.forward))
	for value := range t.forward {
		out = append(out, value)
	}
	out.Sort()
	return out
}

// Dump writes a programmer-readable debugging dump of the table's current
// state to the given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.forward))
	for _, value := range t.values() {
		fmt.Fprintf(&buf, "\tCode(%d) = %q\n", value, t.forward[value].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (t CodeTable) DebugString() string {
	var sb strings.Builder
	_, _ = t.Dump(&sb)
	return sb.String()
}

// MarshalJSON renders the table as a JSON object mapping decimal byte
// values to code strings, preserving zero-length codes.
func (t CodeTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Strings())
}

// UnmarshalJSON rebuilds a table from its JSON object form, applying the
// same validation as CodeTableFromStrings.
func (t *CodeTable) UnmarshalJSON(raw []byte) error {
	var codes map[byte]string
	if err := json.Unmarshal(raw, &codes); err != nil {
		return err
	}
	table, err := CodeTableFromStrings(codes)
	if err != nil {
		return err
	}
	*t = table
	return nil
}

var _ json.Marshaler = CodeTable{}
var _ json.Unmarshaler = (*CodeTable)(nil)

// type byteList {{{

type byteList []byte

func (list byteList) Sort() {
	sort.Sort(list)
}

func (list byteList) Len() int {
	return len(list)
}

func (list byteList) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byteList) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = byteList(nil)

// }}}
