package der

import "github.com/dercodec/der/tlv"

// EncodeExplicit writes an outer constructed context-specific header with
// the given tag number, wrapping v's full TLV encoding as its value.
func EncodeExplicit(w *tlv.Writer, number uint64, v Value) error {
	h := tlv.Header{Tag: tlv.ContextSpecific(number, true), Length: tlv.Definite(int64(TLVLen(v)))}
	if err := w.WriteHeader(h); err != nil {
		return err
	}
	return EncodeDER(w, v)
}

// DecodeExplicit reads an outer constructed context-specific header with the
// given tag number and decodes v from its value. Absence (a non-matching
// tag) is reported as [tlv.KindUnexpectedTag] naming the context-specific
// tag.
func DecodeExplicit(r *tlv.Reader, number uint64, v Value) error {
	want := tlv.ContextSpecific(number, true)
	h, err := r.PeekHeader()
	if err != nil {
		return err
	}
	if !h.Tag.Equal(want) {
		return unexpectedTag(r, want, h.Tag)
	}
	if _, err := r.ReadHeader(); err != nil {
		return err
	}
	return tlv.ReadNested(r, h, func(nr *tlv.Reader) error {
		if err := DecodeDER(nr, v); err != nil {
			return err
		}
		_, err := tlv.Finish(nr, struct{}{})
		return err
	})
}

// DecodeExplicitOptional behaves like DecodeExplicit, but returns
// (false, nil) instead of an error when the next tag does not match,
// leaving the reader positioned at that tag so the caller can try the next
// field.
func DecodeExplicitOptional(r *tlv.Reader, number uint64, v Value) (present bool, err error) {
	want := tlv.ContextSpecific(number, true)
	h, err := r.PeekHeader()
	if err != nil {
		if r.IsFinished() {
			return false, nil
		}
		return false, err
	}
	if !h.Tag.Equal(want) {
		return false, nil
	}
	return true, DecodeExplicit(r, number, v)
}

// EncodeExplicitMessage behaves like EncodeExplicit, but wraps a [Message]
// rather than a [Value]. It is the form CHOICE-shaped or variable-tag fields
// (such as an EXPLICIT ANY) require, since their own tag cannot be known
// before they are encoded or decoded.
func EncodeExplicitMessage(w *tlv.Writer, number uint64, m Message) error {
	inner := tlv.NewWriter()
	if err := m.EncodeDER(inner); err != nil {
		return err
	}
	h := tlv.Header{Tag: tlv.ContextSpecific(number, true), Length: tlv.Definite(int64(inner.Len()))}
	if err := w.WriteHeader(h); err != nil {
		return err
	}
	w.Write(inner.Bytes())
	return nil
}

// DecodeExplicitMessage is the [Message] counterpart of DecodeExplicit.
func DecodeExplicitMessage(r *tlv.Reader, number uint64, m Message) error {
	want := tlv.ContextSpecific(number, true)
	h, err := r.PeekHeader()
	if err != nil {
		return err
	}
	if !h.Tag.Equal(want) {
		return unexpectedTag(r, want, h.Tag)
	}
	if _, err := r.ReadHeader(); err != nil {
		return err
	}
	return tlv.ReadNested(r, h, func(nr *tlv.Reader) error {
		if err := m.DecodeDER(nr); err != nil {
			return err
		}
		_, err := tlv.Finish(nr, struct{}{})
		return err
	})
}

// EncodeImplicit writes v's content octets under a context-specific tag of
// the given number, replacing v's natural tag while keeping its
// constructed/primitive bit (IMPLICIT tagging).
func EncodeImplicit(w *tlv.Writer, number uint64, v Value) error {
	tag := tlv.ContextSpecific(number, v.Tag().Constructed)
	h := tlv.Header{Tag: tag, Length: tlv.Definite(int64(v.ValueLen()))}
	if err := w.WriteHeader(h); err != nil {
		return err
	}
	return v.EncodeValue(w)
}

// DecodeImplicit reads a context-specific header of the given number and
// constructed bit, reconstructs v's natural tag, and decodes v's value from
// the bounded content.
func DecodeImplicit(r *tlv.Reader, number uint64, constructed bool, v Value) error {
	want := tlv.ContextSpecific(number, constructed)
	h, err := r.PeekHeader()
	if err != nil {
		return err
	}
	if !h.Tag.Equal(want) || h.Tag.Constructed != constructed {
		return unexpectedTag(r, want, h.Tag)
	}
	if _, err := r.ReadHeader(); err != nil {
		return err
	}
	return tlv.ReadNested(r, h, v.DecodeValue)
}

// DecodeImplicitOptional behaves like DecodeImplicit, but returns
// (false, nil) instead of an error when the next tag does not match.
func DecodeImplicitOptional(r *tlv.Reader, number uint64, constructed bool, v Value) (present bool, err error) {
	want := tlv.ContextSpecific(number, constructed)
	h, err := r.PeekHeader()
	if err != nil {
		if r.IsFinished() {
			return false, nil
		}
		return false, err
	}
	if !h.Tag.Equal(want) {
		return false, nil
	}
	return true, DecodeImplicit(r, number, constructed, v)
}
