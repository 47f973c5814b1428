package packet

import "testing"

func TestFixedHeaderRoundTrip(t *testing.T) {
	fh := FixedHeader{Type: PUBLISH, Flags: BuildPublishFlags(true, QoS1, false), RemainingLength: 300}
	enc, err := EncodeFixedHeader(nil, fh)
	if err != nil {
		t.Fatal(err)
	}
	got, n, err := DecodeFixedHeader(enc)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(enc) {
		t.Fatalf("consumed %d, want %d", n, len(enc))
	}
	if got.Type != fh.Type || got.Flags != fh.Flags || got.RemainingLength != fh.RemainingLength {
		t.Fatalf("got %+v, want %+v", got, fh)
	}
}

func TestReservedPacketTypeRejected(t *testing.T) {
	_, _, err := DecodeFixedHeader([]byte{0x00, 0x00})
	if err != ErrReservedType {
		t.Errorf("got %v, want ErrReservedType", err)
	}
}

func TestInvalidFlagsRejected(t *testing.T) {
	// CONNECT requires flags == 0
	_, _, err := DecodeFixedHeader([]byte{0x11, 0x00})
	if err != ErrInvalidFlags {
		t.Errorf("got %v, want ErrInvalidFlags", err)
	}
}

func TestPubrelRequiresLowNibbleTwo(t *testing.T) {
	_, _, err := DecodeFixedHeader([]byte{0x60, 0x02}) // PUBREL with flags 0, should fail
	if err != ErrInvalidFlags {
		t.Errorf("got %v, want ErrInvalidFlags", err)
	}
	fh, _, err := DecodeFixedHeader([]byte{0x62, 0x02})
	if err != nil {
		t.Fatal(err)
	}
	if fh.Type != PUBREL {
		t.Errorf("got type %v", fh.Type)
	}
}

func TestPublishFlagsAndMasked(t *testing.T) {
	// Only QoS bits set; DUP and RETAIN must read false, not true.
	dup, qos, retain, err := PublishFlags(0x04)
	if err != nil {
		t.Fatal(err)
	}
	if dup || retain {
		t.Errorf("dup=%v retain=%v, want both false", dup, retain)
	}
	if qos != QoS2 {
		t.Errorf("qos=%v, want QoS2", qos)
	}
}

func TestPublishFlagsInvalidQoS(t *testing.T) {
	_, _, _, err := PublishFlags(0x06 | 0x02) // QoS bits = 3
	if err != ErrInvalidQoS {
		t.Errorf("got %v, want ErrInvalidQoS", err)
	}
}

func TestVarIntBoundaryRemainingLength(t *testing.T) {
	for _, rl := range []uint32{127, 128, 16383, 16384} {
		fh := FixedHeader{Type: DISCONNECT, Flags: 0, RemainingLength: rl}
		enc, err := EncodeFixedHeader(nil, fh)
		if err != nil {
			t.Fatal(err)
		}
		got, n, err := DecodeFixedHeader(enc)
		if err != nil {
			t.Fatal(err)
		}
		if got.RemainingLength != rl || n != len(enc) {
			t.Fatalf("rl=%d: got %+v n=%d", rl, got, n)
		}
	}
}
