package tlv

import "testing"

func TestTagEqualIgnoresConstructed(t *testing.T) {
	a := Universal(TagInteger, false)
	b := Universal(TagInteger, true)
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v ignoring constructed bit", a, b)
	}
	c := ContextSpecific(0, false)
	if a.Equal(c) {
		t.Fatalf("tags of different class/number must not be equal")
	}
}

func TestTagNumberRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 30, 31, 127, 128, 300, 1 << 20} {
		var dst []byte
		if n > 30 {
			dst = encodeTagNumber(dst, n)
		}
		if n <= 30 {
			continue
		}
		got, consumed, err := decodeTagNumber(dst)
		if err != nil {
			t.Fatalf("decodeTagNumber(%d): %v", n, err)
		}
		if got != n || consumed != len(dst) {
			t.Fatalf("decodeTagNumber(%d) = %d, %d want %d, %d", n, got, consumed, n, len(dst))
		}
	}
}

func TestDecodeTagNumberRejectsNonMinimal(t *testing.T) {
	if _, _, err := decodeTagNumber([]byte{0x80, 0x01}); err == nil {
		t.Fatal("expected error for non-minimal tag number encoding")
	}
}

func TestDecodeTagNumberIncomplete(t *testing.T) {
	if _, _, err := decodeTagNumber([]byte{0x81}); err == nil {
		t.Fatal("expected incomplete error")
	}
}
