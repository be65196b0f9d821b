package der

import (
	"bytes"
	"testing"
)

func TestEnumeratedRoundTrip(t *testing.T) {
	v := Enumerated(3)
	b, err := Marshal(&v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(b, []byte{0x0a, 0x01, 0x03}) {
		t.Fatalf("got % x", b)
	}
	var got Enumerated
	if err := Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != v {
		t.Fatalf("got %d, want %d", got, v)
	}
}
