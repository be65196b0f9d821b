package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// IssuerAndSerialNumber identifies a certificate by its issuer distinguished
// name and serial number, per RFC 5652, Section 5.3:
//
//	IssuerAndSerialNumber ::= SEQUENCE {
//	    issuer         Name,
//	    serialNumber   CertificateSerialNumber }
//
// Name is an X.509 structure this package does not parse; Issuer is carried
// as its opaque DER encoding.
type IssuerAndSerialNumber struct {
	Issuer       der.Any
	SerialNumber der.Integer
}

func (i *IssuerAndSerialNumber) Tag() tlv.Tag { return tlv.Universal(tlv.TagSequence, true) }

func (i *IssuerAndSerialNumber) ValueLen() int { return der.EncodedLen(i.EncodeValue) }

func (i *IssuerAndSerialNumber) EncodeValue(w *tlv.Writer) error {
	if err := i.Issuer.EncodeDER(w); err != nil {
		return err
	}
	return der.EncodeDER(w, &i.SerialNumber)
}

func (i *IssuerAndSerialNumber) DecodeValue(r *tlv.Reader) error {
	if err := i.Issuer.DecodeDER(r); err != nil {
		return err
	}
	return der.DecodeDER(r, &i.SerialNumber)
}

func (i *IssuerAndSerialNumber) EncodeDER(w *tlv.Writer) error { return der.EncodeDER(w, i) }
func (i *IssuerAndSerialNumber) DecodeDER(r *tlv.Reader) error { return der.DecodeDER(r, i) }
