package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// SignerIdentifier is a CHOICE selecting how a signer's certificate is
// identified, per RFC 5652, Section 5.3:
//
//	SignerIdentifier ::= CHOICE {
//	    issuerAndSerialNumber   IssuerAndSerialNumber,
//	    subjectKeyIdentifier    [0] SubjectKeyIdentifier }
//
// Being a CHOICE, its wire tag varies by variant, so it implements [der.Message]
// directly rather than [der.Value]; ordering it inside a SET OF compares the
// two variants' full DER encodings like any other Message.
type SignerIdentifier struct {
	IssuerAndSerialNumber *IssuerAndSerialNumber
	SubjectKeyIdentifier  *der.OctetString
}

// FromIssuerAndSerialNumber wraps i as a SignerIdentifier.
func FromIssuerAndSerialNumber(i IssuerAndSerialNumber) SignerIdentifier {
	return SignerIdentifier{IssuerAndSerialNumber: &i}
}

// FromSubjectKeyIdentifier wraps ski as a SignerIdentifier.
func FromSubjectKeyIdentifier(ski der.OctetString) SignerIdentifier {
	return SignerIdentifier{SubjectKeyIdentifier: &ski}
}

func (s *SignerIdentifier) EncodeDER(w *tlv.Writer) error {
	if s.IssuerAndSerialNumber != nil {
		return s.IssuerAndSerialNumber.EncodeDER(w)
	}
	return der.EncodeImplicit(w, 0, s.SubjectKeyIdentifier)
}

func (s *SignerIdentifier) DecodeDER(r *tlv.Reader) error {
	h, err := r.PeekHeader()
	if err != nil {
		return err
	}
	seqTag := tlv.Universal(tlv.TagSequence, true)
	skiTag := tlv.ContextSpecific(0, false)
	switch {
	case h.Tag.Equal(seqTag):
		var iasn IssuerAndSerialNumber
		if err := iasn.DecodeDER(r); err != nil {
			return err
		}
		s.IssuerAndSerialNumber = &iasn
		s.SubjectKeyIdentifier = nil
	case h.Tag.Equal(skiTag):
		var ski der.OctetString
		if err := der.DecodeImplicit(r, 0, false, &ski); err != nil {
			return err
		}
		s.SubjectKeyIdentifier = &ski
		s.IssuerAndSerialNumber = nil
	default:
		return &tlv.Error{Kind: tlv.KindUnexpectedTag, Position: r.Position(), Expected: seqTag, Actual: h.Tag}
	}
	return nil
}
