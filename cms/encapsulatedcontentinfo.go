package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// EncapsulatedContentInfo carries the content actually being signed, per
// RFC 5652, Section 5.2:
//
//	EncapsulatedContentInfo ::= SEQUENCE {
//	    eContentType  ContentType,
//	    eContent      [0] EXPLICIT OCTET STRING OPTIONAL }
//
// eContent is absent for a certs-only or detached-signature envelope.
type EncapsulatedContentInfo struct {
	EContentType der.ObjectIdentifier
	EContent     *der.OctetString
}

// DataEncapsulatedContentInfo returns an EncapsulatedContentInfo with
// content type id-data and no eContent, as used by a certs-only ContentInfo.
func DataEncapsulatedContentInfo() EncapsulatedContentInfo {
	return EncapsulatedContentInfo{EContentType: oidData}
}

func (e *EncapsulatedContentInfo) Tag() tlv.Tag { return tlv.Universal(tlv.TagSequence, true) }

func (e *EncapsulatedContentInfo) ValueLen() int { return der.EncodedLen(e.EncodeValue) }

func (e *EncapsulatedContentInfo) EncodeValue(w *tlv.Writer) error {
	ct := e.EContentType
	if err := der.EncodeDER(w, &ct); err != nil {
		return err
	}
	if e.EContent != nil {
		return der.EncodeExplicit(w, 0, e.EContent)
	}
	return nil
}

func (e *EncapsulatedContentInfo) DecodeValue(r *tlv.Reader) error {
	if err := der.DecodeDER(r, &e.EContentType); err != nil {
		return err
	}
	e.EContent = nil
	if !r.IsFinished() {
		var content der.OctetString
		if err := der.DecodeExplicit(r, 0, &content); err != nil {
			return err
		}
		e.EContent = &content
	}
	return nil
}

func (e *EncapsulatedContentInfo) EncodeDER(w *tlv.Writer) error { return der.EncodeDER(w, e) }
func (e *EncapsulatedContentInfo) DecodeDER(r *tlv.Reader) error { return der.DecodeDER(r, e) }
