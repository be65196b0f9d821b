package cms

import (
	"bytes"
	"testing"

	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

func testAlgorithmIdentifier(t *testing.T, dotted string) AlgorithmIdentifier {
	t.Helper()
	oid, err := der.NewObjectIdentifier(dotted)
	if err != nil {
		t.Fatalf("NewObjectIdentifier: %v", err)
	}
	return AlgorithmIdentifier{Algorithm: oid}
}

// TestSignerInfoRoundTripIssuerAndSerialNumber covers a populated SignerInfo
// using the IssuerAndSerialNumber branch of its sid CHOICE.
func TestSignerInfoRoundTripIssuerAndSerialNumber(t *testing.T) {
	issuerName := der.PrintableString("CN=Test CA")
	iasn := IssuerAndSerialNumber{
		Issuer:       mustAny(t, &issuerName),
		SerialNumber: der.SmallInteger(7),
	}
	si := &SignerInfo{
		Version:            der.SmallInteger(1),
		SID:                FromIssuerAndSerialNumber(iasn),
		DigestAlgorithm:    testAlgorithmIdentifier(t, "2.16.840.1.101.3.4.2.1"),
		SignatureAlgorithm: testAlgorithmIdentifier(t, "1.2.840.113549.1.1.1"),
		Signature:          der.OctetString("signature-bytes"),
	}
	b, err := der.Marshal(si)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got SignerInfo
	if err := der.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.SID.IssuerAndSerialNumber == nil {
		t.Fatal("expected IssuerAndSerialNumber branch, got none")
	}
	if got.SID.SubjectKeyIdentifier != nil {
		t.Fatal("expected SubjectKeyIdentifier branch absent")
	}
	if got.SID.IssuerAndSerialNumber.SerialNumber.V.Int64() != 7 {
		t.Fatalf("got serial %v, want 7", got.SID.IssuerAndSerialNumber.SerialNumber.V)
	}
	if !bytes.Equal(got.Signature, si.Signature) {
		t.Fatalf("got signature %q, want %q", got.Signature, si.Signature)
	}
	if got.SignedAttrs != nil || got.UnsignedAttrs != nil {
		t.Fatal("expected both attribute sets absent")
	}
}

// TestSignerInfoRoundTripSubjectKeyIdentifier covers the other sid CHOICE
// branch, plus a present signedAttrs set.
func TestSignerInfoRoundTripSubjectKeyIdentifier(t *testing.T) {
	issuerName := der.PrintableString("CN=Test CA")
	a := mustAny(t, &issuerName)
	attrs := newAnySet()
	if err := attrs.Insert(&a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	si := &SignerInfo{
		Version:            der.SmallInteger(3),
		SID:                FromSubjectKeyIdentifier(der.OctetString("ski-bytes")),
		DigestAlgorithm:    testAlgorithmIdentifier(t, "2.16.840.1.101.3.4.2.1"),
		SignedAttrs:        attrs,
		SignatureAlgorithm: testAlgorithmIdentifier(t, "1.2.840.113549.1.1.1"),
		Signature:          der.OctetString("signature-bytes"),
	}
	b, err := der.Marshal(si)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got SignerInfo
	if err := der.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.SID.SubjectKeyIdentifier == nil {
		t.Fatal("expected SubjectKeyIdentifier branch, got none")
	}
	if got.SID.IssuerAndSerialNumber != nil {
		t.Fatal("expected IssuerAndSerialNumber branch absent")
	}
	if !bytes.Equal(*got.SID.SubjectKeyIdentifier, []byte("ski-bytes")) {
		t.Fatalf("got ski %q, want %q", *got.SID.SubjectKeyIdentifier, "ski-bytes")
	}
	if got.SignedAttrs == nil || got.SignedAttrs.Len() != 1 {
		t.Fatalf("expected one signed attribute, got %v", got.SignedAttrs)
	}
	if got.UnsignedAttrs != nil {
		t.Fatal("expected unsignedAttrs absent")
	}
}

// TestSignerIdentifierUnexpectedTag covers the CHOICE rejection path: a tag
// matching neither IssuerAndSerialNumber's SEQUENCE nor SubjectKeyIdentifier's
// context-0 tag must fail with UnexpectedTag.
func TestSignerIdentifierUnexpectedTag(t *testing.T) {
	b := []byte{0x02, 0x01, 0x01} // INTEGER, neither CHOICE alternative
	r := tlv.NewReader(b)
	var sid SignerIdentifier
	err := sid.DecodeDER(r)
	if err == nil {
		t.Fatal("expected error for unrecognized CHOICE tag")
	}
	e, ok := err.(*tlv.Error)
	if !ok || e.Kind != tlv.KindUnexpectedTag {
		t.Fatalf("got %v, want KindUnexpectedTag", err)
	}
}
