package hufftap

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	result, err := Encode([]byte("this is a test string!"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expectCodes := map[byte]string{
		' ': "01",
		'!': "0010",
		'a': "0011",
		'e': "0000",
		'g': "0001",
		'h': "10010",
		'i': "101",
		'n': "10011",
		'r': "1000",
		's': "110",
		't': "111",
	}
	actualCodes := result.Table.Strings()
	if !reflect.DeepEqual(expectCodes, actualCodes) {
		t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", expectCodes, actualCodes)
	}

	var bits BitSeq
	for _, value := range []byte("this is a test string!") {
		hc, _ := result.Table.Code(value)
		bits = hc.AppendBits(bits)
	}
	expectBits := "11110010101110011011100100110111100001101110111011110001011001100010010"
	if actualBits := bits.String(); actualBits != expectBits {
		t.Errorf("wrong bit sequence:\n\texpect: %s\n\tactual: %s", expectBits, actualBits)
	}

	expectPacked := []byte{249, 174, 183, 147, 188, 155, 221, 241, 179, 137, 2}
	if !bytes.Equal(expectPacked, result.Packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, result.Packed)
	}
}

func TestEncode_Stats(t *testing.T) {
	result, err := Encode([]byte("My super test string"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expectPacked := []byte{182, 188, 239, 160, 190, 196, 223, 148, 209, 87}
	if !bytes.Equal(expectPacked, result.Packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, result.Packed)
	}

	expectStats := Stats{DataSizeBits: 160, EncodedSizeBits: 80, RatioPercent: 50}
	if expectStats != result.Stats {
		t.Errorf("wrong stats:\n\texpect: %+v\n\tactual: %+v", expectStats, result.Stats)
	}
}

func TestEncode_SingleSymbol(t *testing.T) {
	data := bytes.Repeat([]byte{0x41}, 1000)
	result, err := Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if result.Table.Len() != 1 {
		t.Errorf("expected 1 table entry, got %d", result.Table.Len())
	}
	hc, found := result.Table.Code(0x41)
	if !found || hc.Size != 0 {
		t.Errorf("expected zero-length code for 0x41, got %#v (found %v)", hc, found)
	}

	expectPacked := []byte{1}
	if !bytes.Equal(expectPacked, result.Packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, result.Packed)
	}
}

func TestEncode_Empty(t *testing.T) {
	_, err := Encode(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Encode([]byte{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	first, err := Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := Encode(data)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if !bytes.Equal(first.Packed, second.Packed) {
		t.Errorf("packed bytes differ between runs:\n\tfirst:  %#v\n\tsecond: %#v", first.Packed, second.Packed)
	}
	if !reflect.DeepEqual(first.Table.Strings(), second.Table.Strings()) {
		t.Errorf("tables differ between runs:\n\tfirst:  %v\n\tsecond: %v", first.Table.Strings(), second.Table.Strings())
	}
}

func TestEncode_PrefixFree(t *testing.T) {
	inputs := [...]string{
		"abracadabra",
		"this is a test string!",
		"My super test string",
		"aaabbc",
		"\x00\x01\x02\xfe\xff\xff\xff",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			result, err := Encode([]byte(input))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			codes := result.Table.Strings()
			for a, codeA := range codes {
				for b, codeB := range codes {
					if a == b {
						continue
					}
					if strings.HasPrefix(codeB, codeA) {
						t.Errorf("code %q (byte %d) is a prefix of code %q (byte %d)", codeA, a, codeB, b)
					}
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	data := bytes.Repeat([]byte("My super test string, now with benchmarking. "), 256)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Encode(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}
