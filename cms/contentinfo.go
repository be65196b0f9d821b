package cms

import (
	"github.com/dercodec/der"
	"github.com/dercodec/der/tlv"
)

// ContentInfo is the outermost CMS envelope, per RFC 5652, Section 3:
//
//	ContentInfo ::= SEQUENCE {
//	    contentType   ContentType,
//	    content       [0] EXPLICIT ANY DEFINED BY contentType }
//
// The explicit context-0 wrapper is required; its absence fails with
// [tlv.KindUnexpectedTag] naming context tag 0. ContentInfo accepts BER
// indefinite lengths on ingest but always emits canonical DER.
type ContentInfo struct {
	ContentType der.ObjectIdentifier
	Content     der.Any
}

// NewSignedDataContentInfo wraps sd as a ContentInfo with content type
// id-signedData.
func NewSignedDataContentInfo(sd *SignedData) (*ContentInfo, error) {
	b, err := der.Marshal(sd)
	if err != nil {
		return nil, err
	}
	content, err := der.AnyFromDER(b)
	if err != nil {
		return nil, err
	}
	return &ContentInfo{ContentType: oidSignedData, Content: content}, nil
}

// SignedData decodes ci's content as a SignedData structure. It does not
// check ContentType first; callers that care should compare it against
// [IDSignedData] themselves.
func (ci *ContentInfo) SignedData() (*SignedData, error) {
	full, err := der.MarshalMessage(&ci.Content)
	if err != nil {
		return nil, err
	}
	var sd SignedData
	if err := der.Unmarshal(full, &sd); err != nil {
		return nil, err
	}
	return &sd, nil
}

func (ci *ContentInfo) Tag() tlv.Tag { return tlv.Universal(tlv.TagSequence, true) }

func (ci *ContentInfo) ValueLen() int { return der.EncodedLen(ci.EncodeValue) }

func (ci *ContentInfo) EncodeValue(w *tlv.Writer) error {
	ct := ci.ContentType
	if err := der.EncodeDER(w, &ct); err != nil {
		return err
	}
	return der.EncodeExplicitMessage(w, 0, &ci.Content)
}

func (ci *ContentInfo) DecodeValue(r *tlv.Reader) error {
	if err := der.DecodeDER(r, &ci.ContentType); err != nil {
		return err
	}
	if r.IsFinished() {
		return &tlv.Error{Kind: tlv.KindUnexpectedTag, Position: r.Position(), Expected: tlv.ContextSpecific(0, true)}
	}
	return der.DecodeExplicitMessage(r, 0, &ci.Content)
}

func (ci *ContentInfo) EncodeDER(w *tlv.Writer) error { return der.EncodeDER(w, ci) }
func (ci *ContentInfo) DecodeDER(r *tlv.Reader) error { return der.DecodeDER(r, ci) }
