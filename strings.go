package der

import (
	"unicode/utf8"

	"github.com/dercodec/der/tlv"
)

// UTF8String is the ASN.1 UTF8String type.
type UTF8String string

func (s *UTF8String) Tag() tlv.Tag { return tlv.Universal(tlv.TagUTF8String, false) }

func (s *UTF8String) ValueLen() int { return len(*s) }

func (s *UTF8String) EncodeValue(w *tlv.Writer) error {
	w.Write([]byte(*s))
	return nil
}

func (s *UTF8String) DecodeValue(r *tlv.Reader) error {
	b, err := tlv.ReadConstructedString(r, tlv.Universal(tlv.TagUTF8String, false), r.Constructed())
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return valueError(r, s.Tag(), errInvalidUTF8)
	}
	*s = UTF8String(b)
	return nil
}

func (s *UTF8String) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, s) }
func (s *UTF8String) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, s) }

// PrintableString is the ASN.1 PrintableString type, restricted to the
// charset of Rec. ITU-T X.680, Section 41.4: letters, digits, space, and
// the punctuation "'()+,-./:=?".
type PrintableString string

func (s *PrintableString) Tag() tlv.Tag { return tlv.Universal(tlv.TagPrintableString, false) }

func (s *PrintableString) ValueLen() int { return len(*s) }

func (s *PrintableString) EncodeValue(w *tlv.Writer) error {
	w.Write([]byte(*s))
	return nil
}

func (s *PrintableString) DecodeValue(r *tlv.Reader) error {
	b, err := tlv.ReadConstructedString(r, tlv.Universal(tlv.TagPrintableString, false), r.Constructed())
	if err != nil {
		return err
	}
	for _, c := range b {
		if !isPrintableChar(c) {
			return valueError(r, s.Tag(), errNotPrintable)
		}
	}
	*s = PrintableString(b)
	return nil
}

func (s *PrintableString) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, s) }
func (s *PrintableString) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, s) }

func isPrintableChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == ' ':
		return true
	}
	switch c {
	case '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// IA5String is the ASN.1 IA5String type, restricted to the 7-bit IA5
// (ASCII) charset.
type IA5String string

func (s *IA5String) Tag() tlv.Tag { return tlv.Universal(tlv.TagIA5String, false) }

func (s *IA5String) ValueLen() int { return len(*s) }

func (s *IA5String) EncodeValue(w *tlv.Writer) error {
	w.Write([]byte(*s))
	return nil
}

func (s *IA5String) DecodeValue(r *tlv.Reader) error {
	b, err := tlv.ReadConstructedString(r, tlv.Universal(tlv.TagIA5String, false), r.Constructed())
	if err != nil {
		return err
	}
	for _, c := range b {
		if c > 0x7f {
			return valueError(r, s.Tag(), errNotIA5)
		}
	}
	*s = IA5String(b)
	return nil
}

func (s *IA5String) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, s) }
func (s *IA5String) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, s) }
