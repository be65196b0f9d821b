package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// SignedData is the core CMS signed-message structure, per RFC 5652,
// Section 5.1:
//
//	SignedData ::= SEQUENCE {
//	    version            CMSVersion,
//	    digestAlgorithms   SET OF DigestAlgorithmIdentifier,
//	    encapContentInfo   EncapsulatedContentInfo,
//	    certificates       [0] IMPLICIT CertificateSet OPTIONAL,
//	    crls               [1] IMPLICIT RevocationInfoChoices OPTIONAL,
//	    signerInfos        SET OF SignerInfo }
//
// version is CMSVersion, an INTEGER ranging 0-5, despite the enumerated-like
// naming. CertificateChoices and RevocationInfoChoices are X.509 structures
// outside this package's scope and are held as opaque [der.Any] elements.
type SignedData struct {
	Version            der.Integer
	DigestAlgorithms   *der.SetOfVec[*AlgorithmIdentifier]
	EncapContentInfo   EncapsulatedContentInfo
	Certificates       *der.SetOfVec[*der.Any]
	CRLs               *der.SetOfVec[*der.Any]
	SignerInfos        *der.SetOfVec[*SignerInfo]
}

// CertsOnlyOptions controls the shape of [NewCertsOnlySignedData]. The zero
// value matches RFC 5652's degenerate certs-only form as produced by an
// entrenched PKCS#7 peer: an explicitly-present but empty [1] IMPLICIT crls
// SET, rather than an absent one. The source this package is grounded on
// carried two mutually inconsistent behaviors here; OmitEmptyCRLSet makes
// the choice an explicit option instead of an inferred one.
type CertsOnlyOptions struct {
	// OmitEmptyCRLSet, when true, leaves the crls field absent instead of
	// emitting it as an explicitly-present empty SET.
	OmitEmptyCRLSet bool
}

// NewCertsOnlySignedData builds a certs-only SignedData (RFC 5652's
// "degenerate" form, used to convey a certificate bundle without an actual
// signature): version 1, an empty digestAlgorithms set, an
// EncapsulatedContentInfo of id-data with no eContent, the given
// certificates, and an empty signerInfos set.
func NewCertsOnlySignedData(certs []der.Any, opts CertsOnlyOptions) (*SignedData, error) {
	certSet := newAnySet()
	for _, c := range certs {
		cc := c
		if err := certSet.Insert(&cc); err != nil {
			return nil, err
		}
	}
	sd := &SignedData{
		Version:          der.SmallInteger(1),
		DigestAlgorithms: der.NewSetOfVec(func() *AlgorithmIdentifier { return new(AlgorithmIdentifier) }),
		EncapContentInfo: DataEncapsulatedContentInfo(),
		Certificates:     certSet,
		SignerInfos:      der.NewSetOfVec(func() *SignerInfo { return new(SignerInfo) }),
	}
	if !opts.OmitEmptyCRLSet {
		sd.CRLs = newAnySet()
	}
	return sd, nil
}

// NewCertsOnlyContentInfo is the convenience builder of RFC 5652's
// certs-only form: a ContentInfo of content type id-signedData wrapping the
// SignedData [NewCertsOnlySignedData] builds.
func NewCertsOnlyContentInfo(certs []der.Any, opts CertsOnlyOptions) (*ContentInfo, error) {
	sd, err := NewCertsOnlySignedData(certs, opts)
	if err != nil {
		return nil, err
	}
	return NewSignedDataContentInfo(sd)
}

func (s *SignedData) Tag() tlv.Tag { return tlv.Universal(tlv.TagSequence, true) }

func (s *SignedData) ValueLen() int { return der.EncodedLen(s.EncodeValue) }

func (s *SignedData) EncodeValue(w *tlv.Writer) error {
	if err := der.EncodeDER(w, &s.Version); err != nil {
		return err
	}
	if err := s.DigestAlgorithms.EncodeDER(w); err != nil {
		return err
	}
	if err := s.EncapContentInfo.EncodeDER(w); err != nil {
		return err
	}
	if s.Certificates != nil {
		if err := der.EncodeImplicit(w, 0, s.Certificates); err != nil {
			return err
		}
	}
	if s.CRLs != nil {
		if err := der.EncodeImplicit(w, 1, s.CRLs); err != nil {
			return err
		}
	}
	return s.SignerInfos.EncodeDER(w)
}

func (s *SignedData) DecodeValue(r *tlv.Reader) error {
	if err := der.DecodeDER(r, &s.Version); err != nil {
		return err
	}
	s.DigestAlgorithms = der.NewSetOfVec(func() *AlgorithmIdentifier { return new(AlgorithmIdentifier) })
	if err := s.DigestAlgorithms.DecodeDER(r); err != nil {
		return err
	}
	if err := s.EncapContentInfo.DecodeDER(r); err != nil {
		return err
	}
	s.Certificates = newAnySet()
	if present, err := der.DecodeImplicitOptional(r, 0, true, s.Certificates); err != nil {
		return err
	} else if !present {
		s.Certificates = nil
	}
	s.CRLs = newAnySet()
	if present, err := der.DecodeImplicitOptional(r, 1, true, s.CRLs); err != nil {
		return err
	} else if !present {
		s.CRLs = nil
	}
	s.SignerInfos = der.NewSetOfVec(func() *SignerInfo { return new(SignerInfo) })
	return s.SignerInfos.DecodeDER(r)
}

func (s *SignedData) EncodeDER(w *tlv.Writer) error { return der.EncodeDER(w, s) }
func (s *SignedData) DecodeDER(r *tlv.Reader) error { return der.DecodeDER(r, s) }
