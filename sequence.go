package der

import "github.com/dercodec/der/tlv"

// EncodedLen returns the number of bytes encode would write to a fresh
// [tlv.Writer]. SEQUENCE-shaped types in packages built on top of this one
// (such as cms) use it to implement ValueLen in terms of their own
// EncodeValue, rather than duplicating the field-length arithmetic in two
// places.
func EncodedLen(encode func(w *tlv.Writer) error) int {
	w := tlv.NewWriter()
	if err := encode(w); err != nil {
		return 0
	}
	return w.Len()
}
