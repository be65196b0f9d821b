// Package der implements the ASN.1 Distinguished Encoding Rules (DER) on top
// of the wire substrate in [github.com/dercodec/der/tlv], with partial
// ingest support for the Basic Encoding Rules (BER): the indefinite-length
// form and constructed string encodings. Values built from this package
// always emit canonical DER; only decoding accepts BER.
//
// Cryptographic message structures built on top of this codec (CMS/PKCS#7
// ContentInfo and SignedData, as described in RFC 5652) live in the
// [github.com/dercodec/der/cms] subpackage.
package der

import "github.com/dercodec/der/tlv"

// Value is implemented by every type with a single, fixed wire tag: the
// primitive value codecs (INTEGER, OCTET STRING, ...) and every SEQUENCE or
// SET-shaped structural type. Types whose wire tag varies by variant (ASN.1
// CHOICE) implement [Message] directly instead.
type Value interface {
	// Tag returns the universal, application, context-specific or private
	// tag this value is encoded under.
	Tag() tlv.Tag
	// ValueLen returns the length in bytes of the content octets EncodeValue
	// would write, without writing them.
	ValueLen() int
	// EncodeValue writes exactly ValueLen() bytes: the content octets, not
	// including the header.
	EncodeValue(w *tlv.Writer) error
	// DecodeValue reads the content octets of a TLV whose header has already
	// been matched against Tag() and bounded to ValueLen() bytes by the
	// caller.
	DecodeValue(r *tlv.Reader) error
}

// Message is implemented by types that decide their own tag dispatch, most
// notably ASN.1 CHOICE types, whose wire tag depends on which variant is
// present.
type Message interface {
	EncodeDER(w *tlv.Writer) error
	DecodeDER(r *tlv.Reader) error
}

// EncodeDER writes v's full TLV encoding (header and value) to w.
func EncodeDER(w *tlv.Writer, v Value) error {
	h := tlv.Header{Tag: v.Tag(), Length: tlv.Definite(int64(v.ValueLen()))}
	if err := w.WriteHeader(h); err != nil {
		return err
	}
	return v.EncodeValue(w)
}

// DecodeDER reads a TLV from r, checks that its tag matches v.Tag(), bounds
// a nested reader to its value, and calls v.DecodeValue.
func DecodeDER(r *tlv.Reader, v Value) error {
	h, err := r.PeekHeader()
	if err != nil {
		return err
	}
	if !h.Tag.Equal(v.Tag()) {
		return unexpectedTag(r, v.Tag(), h.Tag)
	}
	if _, err := r.ReadHeader(); err != nil {
		return err
	}
	return tlv.ReadNested(r, h, v.DecodeValue)
}

// TLVLen returns the number of bytes EncodeDER(w, v) would write: the
// header plus v's content octets. [EncodeExplicit] uses this to compute the
// length of its outer context-specific wrapper before writing it.
func TLVLen(v Value) int {
	n := v.ValueLen()
	return tlv.HeaderLen(tlv.Header{Tag: v.Tag(), Length: tlv.Definite(int64(n))}) + n
}

// Marshal returns the canonical DER encoding of v.
func Marshal(v Value) ([]byte, error) {
	w := tlv.NewWriter()
	if err := EncodeDER(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes b as the strict DER encoding of v, requiring the input
// to be fully consumed.
func Unmarshal(b []byte, v Value) error {
	r := tlv.NewReader(b)
	if err := DecodeDER(r, v); err != nil {
		return err
	}
	_, err := tlv.Finish(r, struct{}{})
	return err
}

// UnmarshalBER decodes b as the DER or BER encoding of v, accepting
// indefinite lengths and constructed strings, and requires the input to be
// fully consumed.
func UnmarshalBER(b []byte, v Value) error {
	r := tlv.NewBERReader(b)
	if err := DecodeDER(r, v); err != nil {
		return err
	}
	_, err := tlv.Finish(r, struct{}{})
	return err
}

// MarshalMessage returns the canonical DER encoding of a [Message].
func MarshalMessage(m Message) ([]byte, error) {
	w := tlv.NewWriter()
	if err := m.EncodeDER(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalMessage decodes b as the strict DER encoding of a [Message],
// requiring the input to be fully consumed.
func UnmarshalMessage(b []byte, m Message) error {
	r := tlv.NewReader(b)
	if err := m.DecodeDER(r); err != nil {
		return err
	}
	_, err := tlv.Finish(r, struct{}{})
	return err
}

// UnmarshalMessageBER decodes b as the DER or BER encoding of a [Message].
func UnmarshalMessageBER(b []byte, m Message) error {
	r := tlv.NewBERReader(b)
	if err := m.DecodeDER(r); err != nil {
		return err
	}
	_, err := tlv.Finish(r, struct{}{})
	return err
}
