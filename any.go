package der

import "github.com/dercodec/der/tlv"

// Any is an untyped TLV: a tag together with its value bytes (not the
// header). It preserves the exact bytes of the value so they can be
// redecoded as a specific type later.
//
// If Any is decoded from a BER indefinite-length production, the bytes it
// retains are the source bytes between the indefinite-length header and its
// end-of-content marker, and re-encoding it writes a definite-length header.
// When those value bytes are themselves DER, the result is the canonical DER
// encoding of the value. Indefinite-length or constructed-string encodings
// nested inside the value are kept as they are, not converted to DER.
type Any struct {
	ATag  tlv.Tag
	Bytes []byte
}

// AnyFromDER parses the single top-level TLV in b and returns it as an Any.
// b must contain exactly one TLV; trailing bytes are an error.
func AnyFromDER(b []byte) (Any, error) {
	var a Any
	if err := UnmarshalMessage(b, &a); err != nil {
		return Any{}, err
	}
	return a, nil
}

func (a *Any) Tag() tlv.Tag { return a.ATag }

func (a *Any) ValueLen() int { return len(a.Bytes) }

func (a *Any) EncodeValue(w *tlv.Writer) error {
	w.Write(a.Bytes)
	return nil
}

func (a *Any) DecodeValue(r *tlv.Reader) error {
	b, err := r.ReadSlice(r.RemainingLen())
	if err != nil {
		return err
	}
	a.Bytes = append([]byte(nil), b...)
	return nil
}

// DecodeDER overrides the fixed-tag dispatch of [DecodeDER]: Any accepts
// whatever tag is present, recording it in ATag.
func (a *Any) DecodeDER(r *tlv.Reader) error {
	tlvBytes, err := r.TLVBytes()
	if err != nil {
		return err
	}
	h, n, decErr := peekHeaderOf(tlvBytes)
	if decErr != nil {
		return decErr
	}
	a.ATag = h.Tag
	a.Bytes = append([]byte(nil), tlvBytes[n:]...)
	return nil
}

// EncodeDER writes a's stored tag and value bytes verbatim. The caller is
// responsible for ensuring those bytes are themselves canonical DER.
func (a *Any) EncodeDER(w *tlv.Writer) error {
	h := tlv.Header{Tag: a.ATag, Length: tlv.Definite(int64(len(a.Bytes)))}
	if err := w.WriteHeader(h); err != nil {
		return err
	}
	w.Write(a.Bytes)
	return nil
}

// peekHeaderOf decodes the header at the start of a self-contained TLV
// encoding (as returned by [tlv.Reader.TLVBytes]) and returns it along with
// the number of header bytes.
func peekHeaderOf(tlvBytes []byte) (tlv.Header, int, error) {
	r := tlv.NewReader(tlvBytes)
	h, err := r.ReadHeader()
	if err != nil {
		return tlv.Header{}, 0, err
	}
	return h, r.Position(), nil
}
