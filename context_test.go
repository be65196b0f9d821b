package der

import (
	"bytes"
	"testing"

	"github.com/dercodec/der/tlv"
)

func TestEncodeExplicitRoundTrip(t *testing.T) {
	w := tlv.NewWriter()
	orig := SmallInteger(7)
	if err := EncodeExplicit(w, 0, &orig); err != nil {
		t.Fatalf("EncodeExplicit: %v", err)
	}
	want := []byte{0xa0, 0x03, 0x02, 0x01, 0x07}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got % x, want % x", w.Bytes(), want)
	}
	r := tlv.NewReader(w.Bytes())
	var got Integer
	if err := DecodeExplicit(r, 0, &got); err != nil {
		t.Fatalf("DecodeExplicit: %v", err)
	}
	if got.Int64() != 7 {
		t.Fatalf("got %d, want 7", got.Int64())
	}
}

func TestDecodeExplicitWrongTagFails(t *testing.T) {
	b := []byte{0xa1, 0x03, 0x02, 0x01, 0x07}
	r := tlv.NewReader(b)
	var got Integer
	if err := DecodeExplicit(r, 0, &got); err == nil {
		t.Fatal("expected error decoding context-1 value as context-0")
	}
}

func TestDecodeExplicitOptionalAbsent(t *testing.T) {
	b := []byte{0x02, 0x01, 0x07}
	r := tlv.NewReader(b)
	var got Integer
	present, err := DecodeExplicitOptional(r, 0, &got)
	if err != nil {
		t.Fatalf("DecodeExplicitOptional: %v", err)
	}
	if present {
		t.Fatal("expected field reported absent")
	}
	if r.Position() != 0 {
		t.Fatal("expected reader left at original position")
	}
}

func TestEncodeImplicitPreservesConstructedBit(t *testing.T) {
	w := tlv.NewWriter()
	orig := OctetString("hi")
	if err := EncodeImplicit(w, 1, &orig); err != nil {
		t.Fatalf("EncodeImplicit: %v", err)
	}
	// context tag 1, primitive (OCTET STRING's natural encoding is primitive).
	want := []byte{0x81, 0x02, 'h', 'i'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got % x, want % x", w.Bytes(), want)
	}
	r := tlv.NewReader(w.Bytes())
	var got OctetString
	if err := DecodeImplicit(r, 1, false, &got); err != nil {
		t.Fatalf("DecodeImplicit: %v", err)
	}
	if string(got) != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}

func TestDecodeImplicitOptionalAbsent(t *testing.T) {
	b := []byte{0x04, 0x02, 'h', 'i'}
	r := tlv.NewReader(b)
	var got OctetString
	present, err := DecodeImplicitOptional(r, 0, false, &got)
	if err != nil {
		t.Fatalf("DecodeImplicitOptional: %v", err)
	}
	if present {
		t.Fatal("expected field reported absent")
	}
}
