package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// SignerInfo carries one signer's contribution to a SignedData, per
// RFC 5652, Section 5.3:
//
//	SignerInfo ::= SEQUENCE {
//	    version             CMSVersion,
//	    sid                 SignerIdentifier,
//	    digestAlgorithm     DigestAlgorithmIdentifier,
//	    signedAttrs         [0] IMPLICIT SignedAttributes OPTIONAL,
//	    signatureAlgorithm  SignatureAlgorithmIdentifier,
//	    signature           SignatureValue,
//	    unsignedAttrs       [1] IMPLICIT UnsignedAttributes OPTIONAL }
//
// SignedAttributes and UnsignedAttributes are SET OF Attribute; since
// Attribute's own structure is outside this package's scope, each attribute
// is held as an opaque [der.Any].
type SignerInfo struct {
	Version            der.Integer
	SID                SignerIdentifier
	DigestAlgorithm    AlgorithmIdentifier
	SignedAttrs        *der.SetOfVec[*der.Any]
	SignatureAlgorithm AlgorithmIdentifier
	Signature          der.OctetString
	UnsignedAttrs      *der.SetOfVec[*der.Any]
}

func (s *SignerInfo) Tag() tlv.Tag { return tlv.Universal(tlv.TagSequence, true) }

func (s *SignerInfo) ValueLen() int { return der.EncodedLen(s.EncodeValue) }

func (s *SignerInfo) EncodeValue(w *tlv.Writer) error {
	if err := der.EncodeDER(w, &s.Version); err != nil {
		return err
	}
	if err := s.SID.EncodeDER(w); err != nil {
		return err
	}
	if err := s.DigestAlgorithm.EncodeDER(w); err != nil {
		return err
	}
	if s.SignedAttrs != nil {
		if err := der.EncodeImplicit(w, 0, s.SignedAttrs); err != nil {
			return err
		}
	}
	if err := s.SignatureAlgorithm.EncodeDER(w); err != nil {
		return err
	}
	if err := der.EncodeDER(w, &s.Signature); err != nil {
		return err
	}
	if s.UnsignedAttrs != nil {
		if err := der.EncodeImplicit(w, 1, s.UnsignedAttrs); err != nil {
			return err
		}
	}
	return nil
}

func (s *SignerInfo) DecodeValue(r *tlv.Reader) error {
	if err := der.DecodeDER(r, &s.Version); err != nil {
		return err
	}
	if err := s.SID.DecodeDER(r); err != nil {
		return err
	}
	if err := s.DigestAlgorithm.DecodeDER(r); err != nil {
		return err
	}
	s.SignedAttrs = newAnySet()
	if present, err := der.DecodeImplicitOptional(r, 0, true, s.SignedAttrs); err != nil {
		return err
	} else if !present {
		s.SignedAttrs = nil
	}
	if err := s.SignatureAlgorithm.DecodeDER(r); err != nil {
		return err
	}
	if err := der.DecodeDER(r, &s.Signature); err != nil {
		return err
	}
	s.UnsignedAttrs = newAnySet()
	if present, err := der.DecodeImplicitOptional(r, 1, true, s.UnsignedAttrs); err != nil {
		return err
	} else if !present {
		s.UnsignedAttrs = nil
	}
	return nil
}

func (s *SignerInfo) EncodeDER(w *tlv.Writer) error { return der.EncodeDER(w, s) }
func (s *SignerInfo) DecodeDER(r *tlv.Reader) error { return der.DecodeDER(r, s) }

// newAnySet returns an empty SET OF Any, for the attribute collections that
// SignerInfo and SignedData hold as opaque elements.
func newAnySet() *der.SetOfVec[*der.Any] {
	return der.NewSetOfVec(func() *der.Any { return new(der.Any) })
}
