package wire

import (
	"bytes"
	"strings"
	"testing"
)

func TestU16RoundTrip(t *testing.T) {
	var dst []byte
	dst = AppendU16(dst, 0x1234)
	v, n, err := ReadU16(dst)
	if err != nil || v != 0x1234 || n != 2 {
		t.Fatalf("got %v %v %v", v, n, err)
	}
}

func TestU32RoundTrip(t *testing.T) {
	var dst []byte
	dst = AppendU32(dst, 0xDEADBEEF)
	v, n, err := ReadU32(dst)
	if err != nil || v != 0xDEADBEEF || n != 4 {
		t.Fatalf("got %v %v %v", v, n, err)
	}
}

func TestStringRoundTripEmpty(t *testing.T) {
	dst := AppendString(nil, "")
	if !bytes.Equal(dst, []byte{0x00, 0x00}) {
		t.Fatalf("empty string encoded as %v, want [0 0]", dst)
	}
	s, n, err := ReadString(dst)
	if err != nil || s != "" || n != 2 {
		t.Fatalf("got %q %v %v", s, n, err)
	}
}

func TestStringAt65535Bytes(t *testing.T) {
	s := strings.Repeat("a", 65535)
	dst := AppendString(nil, s)
	if len(dst) != SizeString(s) {
		t.Fatalf("encoded length %d, want %d", len(dst), SizeString(s))
	}
	got, n, err := ReadString(dst)
	if err != nil || got != s || n != len(dst) {
		t.Fatalf("round trip failed: n=%d err=%v", n, err)
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	dst := AppendU16(nil, 2)
	dst = append(dst, 0xFF, 0xFE)
	if _, _, err := ReadString(dst); err != ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestStringNullCharacterRejected(t *testing.T) {
	dst := AppendU16(nil, 1)
	dst = append(dst, 0x00)
	if _, _, err := ReadString(dst); err != ErrInvalidUTF8 {
		t.Errorf("expected ErrInvalidUTF8 for null char, got %v", err)
	}
}

func TestBinaryRoundTripEmptyVsZeroLengthString(t *testing.T) {
	bdst := AppendBinary(nil, []byte{})
	sdst := AppendString(nil, "")
	if !bytes.Equal(bdst, sdst) {
		t.Fatalf("empty binary and empty string should both encode as two zero bytes")
	}

	b, n, err := ReadBinary(bdst)
	if err != nil || n != 2 || b == nil || len(b) != 0 {
		t.Fatalf("got %v %v %v", b, n, err)
	}
}

func TestBinaryAt65535Bytes(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 65535)
	dst := AppendBinary(nil, data)
	got, n, err := ReadBinary(dst)
	if err != nil || n != len(dst) || !bytes.Equal(got, data) {
		t.Fatalf("round trip failed: n=%d err=%v", n, err)
	}
}

func TestStringPairRoundTrip(t *testing.T) {
	p := StringPair{Key: "content-type", Value: "application/json"}
	dst := AppendStringPair(nil, p)
	if len(dst) != SizeStringPair(p) {
		t.Fatalf("size mismatch")
	}
	got, n, err := ReadStringPair(dst)
	if err != nil || got != p || n != len(dst) {
		t.Fatalf("got %+v %v %v", got, n, err)
	}
}
