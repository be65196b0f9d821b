package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// AlgorithmIdentifier identifies a cryptographic algorithm and any
// algorithm-specific parameters, per RFC 5280, Section 4.1.1.2:
//
//	AlgorithmIdentifier ::= SEQUENCE {
//	    algorithm   OBJECT IDENTIFIER,
//	    parameters  ANY DEFINED BY algorithm OPTIONAL }
type AlgorithmIdentifier struct {
	Algorithm  der.ObjectIdentifier
	Parameters *der.Any
}

func (a *AlgorithmIdentifier) Tag() tlv.Tag { return tlv.Universal(tlv.TagSequence, true) }

func (a *AlgorithmIdentifier) ValueLen() int {
	return der.EncodedLen(a.EncodeValue)
}

func (a *AlgorithmIdentifier) EncodeValue(w *tlv.Writer) error {
	alg := a.Algorithm
	if err := der.EncodeDER(w, &alg); err != nil {
		return err
	}
	if a.Parameters != nil {
		return a.Parameters.EncodeDER(w)
	}
	return nil
}

func (a *AlgorithmIdentifier) DecodeValue(r *tlv.Reader) error {
	if err := der.DecodeDER(r, &a.Algorithm); err != nil {
		return err
	}
	a.Parameters = nil
	if !r.IsFinished() {
		var params der.Any
		if err := params.DecodeDER(r); err != nil {
			return err
		}
		a.Parameters = &params
	}
	return nil
}

func (a *AlgorithmIdentifier) EncodeDER(w *tlv.Writer) error { return der.EncodeDER(w, a) }
func (a *AlgorithmIdentifier) DecodeDER(r *tlv.Reader) error { return der.DecodeDER(r, a) }
