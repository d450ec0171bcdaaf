package hufftap

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func makeTestTable(t testing.TB) CodeTable {
	t.Helper()
	root, err := BuildTree(CountFrequencies([]byte("abracadabra")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return BuildCodeTable(root)
}

func TestBuildCodeTable(t *testing.T) {
	table := makeTestTable(t)

	expectCodes := map[byte]string{
		'a': "0",
		'b': "111",
		'c': "1100",
		'd': "1101",
		'r': "10",
	}
	actualCodes := table.Strings()
	if !reflect.DeepEqual(expectCodes, actualCodes) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expectCodes, actualCodes)
	}

	for value, s := range expectCodes {
		hc, found := table.Code(value)
		if !found || hc.String() != s {
			t.Errorf("Code(%q) = %q, %v; expected %q", value, hc.String(), found, s)
		}
		back, found := table.Value(hc)
		if !found || back != value {
			t.Errorf("Value(%q) = %d, %v; expected %d", hc.String(), back, found, value)
		}
	}
}

func TestBuildCodeTable_SingleLeaf(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'A': 7})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := BuildCodeTable(root)
	if table.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", table.Len())
	}
	hc, found := table.Code('A')
	if !found || hc != MakeCode(0, 0) {
		t.Errorf("expected the zero-length code, got %#v (found %v)", hc, found)
	}
	value, found := table.Value(Code{})
	if !found || value != 'A' {
		t.Errorf("Value(\"\") = %d, %v; expected 'A'", value, found)
	}
}

func TestBuildCodeTable_Dump(t *testing.T) {
	table := makeTestTable(t)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tLen() = 5\n",
		"\tCode(97) = \"0\"\n",
		"\tCode(98) = \"111\"\n",
		"\tCode(99) = \"1100\"\n",
		"\tCode(100) = \"1101\"\n",
		"\tCode(114) = \"10\"\n",
		"}\n",
	}, "")
	actualDump := table.DebugString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestNewCodeTable_Invalid(t *testing.T) {
	type testRow struct {
		name  string
		codes map[byte]Code
	}

	testData := [...]testRow{
		{
			name: "duplicate code",
			codes: map[byte]Code{
				'a': MakeCode(2, 0x1),
				'b': MakeCode(2, 0x1),
			},
		},
		{
			name: "zero-length code with siblings",
			codes: map[byte]Code{
				'a': MakeCode(0, 0),
				'b': MakeCode(1, 0x1),
			},
		},
		{
			name: "spurious high bits",
			codes: map[byte]Code{
				'a': MakeCode(2, 0x7),
			},
		},
		{
			name: "oversized code",
			codes: map[byte]Code{
				'a': MakeCode(65, 0),
			},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := NewCodeTable(row.codes)
			if !errors.Is(err, ErrInvalidCodeTable) {
				t.Errorf("expected ErrInvalidCodeTable, got %v", err)
			}
		})
	}
}

func TestCodeTableFromStrings(t *testing.T) {
	table, err := CodeTableFromStrings(map[byte]string{
		'a': "0",
		'b': "10",
		'c': "11",
	})
	if err != nil {
		t.Fatalf("CodeTableFromStrings failed: %v", err)
	}
	if value, found := table.Value(MakeCode(2, 0x2)); !found || value != 'b' {
		t.Errorf("Value(\"10\") = %d, %v; expected 'b'", value, found)
	}

	_, err = CodeTableFromStrings(map[byte]string{'a': "0", 'b': "2"})
	if !errors.Is(err, ErrInvalidCodeTable) {
		t.Errorf("expected ErrInvalidCodeTable, got %v", err)
	}
	_, err = CodeTableFromStrings(map[byte]string{'a': "0", 'b': "0"})
	if !errors.Is(err, ErrInvalidCodeTable) {
		t.Errorf("expected ErrInvalidCodeTable, got %v", err)
	}
}

func TestCodeTable_JSON(t *testing.T) {
	table := makeTestTable(t)

	raw, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var parsed CodeTable
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(table.Strings(), parsed.Strings()) {
		t.Errorf("wrong round trip:\n\texpect: %v\n\tactual: %v", table.Strings(), parsed.Strings())
	}
}

func TestCodeTable_JSON_ZeroLengthCode(t *testing.T) {
	table, err := CodeTableFromStrings(map[byte]string{0x41: ""})
	if err != nil {
		t.Fatalf("CodeTableFromStrings failed: %v", err)
	}

	raw, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if expect := `{"65":""}`; string(raw) != expect {
		t.Errorf("wrong JSON:\n\texpect: %s\n\tactual: %s", expect, string(raw))
	}

	var parsed CodeTable
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if value, found := parsed.Value(Code{}); !found || value != 0x41 {
		t.Errorf("Value(\"\") = %d, %v; expected 65", value, found)
	}

	var rejected CodeTable
	if err := json.Unmarshal([]byte(`{"65":"","66":"1"}`), &rejected); !errors.Is(err, ErrInvalidCodeTable) {
		t.Errorf("expected ErrInvalidCodeTable, got %v", err)
	}
}
