package cms

import (
	"testing"

	"github.com/dercodec/der"
)

func TestEncapsulatedContentInfoWithoutEContent(t *testing.T) {
	e := DataEncapsulatedContentInfo()
	b, err := der.MarshalMessage(&e)
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}
	var got EncapsulatedContentInfo
	if err := der.UnmarshalMessage(b, &got); err != nil {
		t.Fatalf("UnmarshalMessage: %v", err)
	}
	if got.EContent != nil {
		t.Fatal("expected absent eContent")
	}
	if !got.EContentType.Equal(e.EContentType) {
		t.Fatalf("got %s, want %s", got.EContentType, e.EContentType)
	}
}

func TestEncapsulatedContentInfoWithEContent(t *testing.T) {
	content := der.OctetString("payload")
	e := EncapsulatedContentInfo{EContentType: mustOID(IDData), EContent: &content}
	b, err := der.MarshalMessage(&e)
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}
	var got EncapsulatedContentInfo
	if err := der.UnmarshalMessage(b, &got); err != nil {
		t.Fatalf("UnmarshalMessage: %v", err)
	}
	if got.EContent == nil || string(*got.EContent) != "payload" {
		t.Fatalf("got %v, want %q", got.EContent, "payload")
	}
}
