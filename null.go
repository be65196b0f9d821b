package der

import "github.com/dercodec/der/tlv"

// Null is the ASN.1 NULL type: a tag with zero-length content.
type Null struct{}

func (Null) Tag() tlv.Tag { return tlv.Universal(tlv.TagNull, false) }

func (Null) ValueLen() int { return 0 }

func (Null) EncodeValue(w *tlv.Writer) error { return nil }

func (n *Null) DecodeValue(r *tlv.Reader) error {
	if r.RemainingLen() != 0 {
		return valueError(r, n.Tag(), errWrongLength)
	}
	return nil
}

func (n *Null) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, n) }
func (n *Null) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, n) }
