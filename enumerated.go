package der

import "github.com/dercodec/der/tlv"

// Enumerated is the ASN.1 ENUMERATED type. It shares INTEGER's content
// encoding but uses a distinct universal tag.
type Enumerated int64

func (e *Enumerated) Tag() tlv.Tag { return tlv.Universal(tlv.TagEnumerated, false) }

func (e *Enumerated) ValueLen() int { return integerContentLen(bigFromInt64(int64(*e))) }

func (e *Enumerated) EncodeValue(w *tlv.Writer) error {
	w.Write(encodeIntegerContent(bigFromInt64(int64(*e))))
	return nil
}

func (e *Enumerated) DecodeValue(r *tlv.Reader) error {
	b, err := r.ReadSlice(r.RemainingLen())
	if err != nil {
		return err
	}
	v, err := decodeIntegerContent(b)
	if err != nil {
		return valueError(r, e.Tag(), err)
	}
	*e = Enumerated(v.Int64())
	return nil
}

func (e *Enumerated) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, e) }
func (e *Enumerated) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, e) }
