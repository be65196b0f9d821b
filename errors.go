package der

import (
	"errors"

	"github.com/dercodec/der/tlv"
)

var (
	errWrongLength         = errors.New("unexpected content length")
	errNonCanonicalBoolean = errors.New("BOOLEAN content octet must be 0x00 or 0xff in DER")
	errLeadingZero         = errors.New("INTEGER has a non-minimal leading zero octet")
	errNegativeLength      = errors.New("OBJECT IDENTIFIER arc encoding is truncated")
	errEmptyOID            = errors.New("OBJECT IDENTIFIER must have at least two arcs")
	errNotPrintable        = errors.New("PrintableString contains a character outside its permitted charset")
	errNotIA5              = errors.New("IA5String contains a byte outside the 7-bit IA5 charset")
	errInvalidUTF8         = errors.New("UTF8String content is not valid UTF-8")
)

// unexpectedTag reports a [tlv.KindUnexpectedTag] error at r's current
// position, naming the expected and actual tags.
func unexpectedTag(r *tlv.Reader, expected, actual tlv.Tag) error {
	return &tlv.Error{Kind: tlv.KindUnexpectedTag, Position: r.Position(), Expected: expected, Actual: actual}
}

// valueError reports a [tlv.KindValue] error: the content octets of tag
// violated the per-type contract (e.g. a non-minimal INTEGER encoding).
func valueError(r *tlv.Reader, tag tlv.Tag, err error) error {
	return &tlv.Error{Kind: tlv.KindValue, Position: r.Position(), Tag: tag, Err: err}
}
