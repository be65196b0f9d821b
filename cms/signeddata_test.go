package cms

import (
	"testing"

	"github.com/dercodec/der"
)

func testCertificate(t *testing.T, serial int64) der.Any {
	t.Helper()
	issuerName := der.PrintableString("CN=Test CA")
	iasn := IssuerAndSerialNumber{
		Issuer:       mustAny(t, &issuerName),
		SerialNumber: der.SmallInteger(serial),
	}
	b, err := der.MarshalMessage(&iasn)
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}
	a, err := der.AnyFromDER(b)
	if err != nil {
		t.Fatalf("AnyFromDER: %v", err)
	}
	return a
}

func mustAny(t *testing.T, v der.Value) der.Any {
	t.Helper()
	b, err := der.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	a, err := der.AnyFromDER(b)
	if err != nil {
		t.Fatalf("AnyFromDER: %v", err)
	}
	return a
}

// TestCertsOnlyContentInfo covers the convenience certs-only builder: a
// ContentInfo wrapping a SignedData with version 1, an empty
// digest-algorithms set, an id-data EncapsulatedContentInfo with no
// eContent, the supplied certificates, an explicitly-present empty crls
// set, and an empty signer-infos set.
func TestCertsOnlyContentInfo(t *testing.T) {
	cert := testCertificate(t, 42)
	ci, err := NewCertsOnlyContentInfo([]der.Any{cert}, CertsOnlyOptions{})
	if err != nil {
		t.Fatalf("NewCertsOnlyContentInfo: %v", err)
	}
	b, err := der.MarshalMessage(ci)
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}
	var got ContentInfo
	if err := der.UnmarshalMessage(b, &got); err != nil {
		t.Fatalf("UnmarshalMessage: %v", err)
	}
	if got.ContentType.String() != IDSignedData {
		t.Fatalf("got content type %s, want %s", got.ContentType, IDSignedData)
	}
	sd, err := got.SignedData()
	if err != nil {
		t.Fatalf("SignedData: %v", err)
	}
	if sd.Version.V.Int64() != 1 {
		t.Fatalf("got version %d, want 1", sd.Version.V)
	}
	if sd.DigestAlgorithms.Len() != 0 {
		t.Fatalf("expected empty digest algorithms, got %d", sd.DigestAlgorithms.Len())
	}
	if sd.SignerInfos.Len() != 0 {
		t.Fatalf("expected empty signer infos, got %d", sd.SignerInfos.Len())
	}
	if sd.Certificates == nil || sd.Certificates.Len() != 1 {
		t.Fatalf("expected one certificate, got %v", sd.Certificates)
	}
	if sd.CRLs == nil || sd.CRLs.Len() != 0 {
		t.Fatal("expected explicitly-present empty crls set by default")
	}
	if sd.EncapContentInfo.EContentType.String() != IDData {
		t.Fatalf("got eContentType %s, want %s", sd.EncapContentInfo.EContentType, IDData)
	}
	if sd.EncapContentInfo.EContent != nil {
		t.Fatal("expected absent eContent")
	}
}

func TestCertsOnlyContentInfoOmitEmptyCRLSet(t *testing.T) {
	cert := testCertificate(t, 1)
	ci, err := NewCertsOnlyContentInfo([]der.Any{cert}, CertsOnlyOptions{OmitEmptyCRLSet: true})
	if err != nil {
		t.Fatalf("NewCertsOnlyContentInfo: %v", err)
	}
	b, err := der.MarshalMessage(ci)
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}
	var got ContentInfo
	if err := der.UnmarshalMessage(b, &got); err != nil {
		t.Fatalf("UnmarshalMessage: %v", err)
	}
	sd, err := got.SignedData()
	if err != nil {
		t.Fatalf("SignedData: %v", err)
	}
	if sd.CRLs != nil {
		t.Fatal("expected absent crls set when OmitEmptyCRLSet is set")
	}
}
