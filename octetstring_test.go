package der

import (
	"bytes"
	"testing"
)

func TestOctetStringRoundTrip(t *testing.T) {
	s := OctetString("hello")
	b, err := Marshal(&s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x04, 0x05, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(b, want) {
		t.Fatalf("got % x, want % x", b, want)
	}
	var got OctetString
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !bytes.Equal(got, s) {
		t.Fatalf("got %q, want %q", got, s)
	}
}

func TestOctetStringBERConstructed(t *testing.T) {
	// Constructed OCTET STRING, definite length, two leaves: "He" "llo".
	b := []byte{
		0x24, 0x09,
		0x04, 0x02, 'H', 'e',
		0x04, 0x03, 'l', 'l', 'o',
	}
	var got OctetString
	if err := UnmarshalBER(b, &got); err != nil {
		t.Fatalf("UnmarshalBER: %v", err)
	}
	if string(got) != "Hello" {
		t.Fatalf("got %q, want %q", got, "Hello")
	}
}

func TestOctetStringConstructedRejectedUnderDER(t *testing.T) {
	b := []byte{
		0x24, 0x04,
		0x04, 0x02, 'H', 'e',
	}
	var got OctetString
	if err := Unmarshal(b, &got); err == nil {
		t.Fatal("expected error decoding constructed OCTET STRING under strict DER")
	}
}

func TestOctetStringMixedTagLeafRejected(t *testing.T) {
	b := []byte{
		0x24, 0x08,
		0x04, 0x02, 'H', 'e',
		0x0c, 0x02, 'l', 'l', // UTF8String leaf inside an OCTET STRING: ill-formed
	}
	var got OctetString
	if err := UnmarshalBER(b, &got); err == nil {
		t.Fatal("expected UnexpectedTag for mismatched constructed-string leaf tag")
	}
}
