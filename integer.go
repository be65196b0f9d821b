package der

import (
	"math/big"

	"github.com/dercodec/der/tlv"
)

// Integer is the ASN.1 INTEGER type, holding an arbitrary-precision value.
// Content octets are two's-complement, big-endian, and minimally encoded: a
// leading 0x00 is only permitted when it is needed to keep the top bit of a
// non-negative value from being mistaken for a sign bit.
type Integer struct {
	V *big.Int
}

// NewInteger wraps n as an [Integer].
func NewInteger(n *big.Int) Integer { return Integer{V: n} }

// SmallInteger wraps a machine int64 as an [Integer], for version fields and
// similar small values.
func SmallInteger(n int64) Integer { return Integer{V: big.NewInt(n)} }

func (i *Integer) Tag() tlv.Tag { return tlv.Universal(tlv.TagInteger, false) }

func (i *Integer) ValueLen() int { return integerContentLen(i.V) }

func (i *Integer) EncodeValue(w *tlv.Writer) error {
	w.Write(encodeIntegerContent(i.V))
	return nil
}

func (i *Integer) DecodeValue(r *tlv.Reader) error {
	b, err := r.ReadSlice(r.RemainingLen())
	if err != nil {
		return err
	}
	v, err := decodeIntegerContent(b)
	if err != nil {
		return valueError(r, i.Tag(), err)
	}
	i.V = v
	return nil
}

func (i *Integer) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, i) }
func (i *Integer) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, i) }

// Int64 returns i as an int64, for CMS version fields and similar small
// values. If i does not fit in an int64 the result is undefined, as for
// [big.Int.Int64]; callers control their own inputs for these fields.
func (i Integer) Int64() int64 { return i.V.Int64() }

func bigFromInt64(n int64) *big.Int { return big.NewInt(n) }

// integerContentLen returns the number of content octets the DER encoding
// of n requires.
func integerContentLen(n *big.Int) int {
	return len(encodeIntegerContent(n))
}

// encodeIntegerContent returns the minimal two's-complement, big-endian
// encoding of n.
func encodeIntegerContent(n *big.Int) []byte {
	if n == nil || n.Sign() == 0 {
		return []byte{0x00}
	}
	if n.Sign() > 0 {
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// Negative: encode two's complement of the smallest magnitude that
	// fits, i.e. -n-1 bit-complemented.
	mag := new(big.Int).Add(n, big.NewInt(1))
	mag.Neg(mag)
	b := mag.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = ^c
	}
	if out[0]&0x80 == 0 {
		out = append([]byte{0xff}, out...)
	}
	return out
}

// decodeIntegerContent decodes the minimal two's-complement, big-endian
// encoding b into a *big.Int, rejecting non-minimal leading octets.
func decodeIntegerContent(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, errWrongLength
	}
	if len(b) > 1 && (b[0] == 0x00 && b[1]&0x80 == 0 || b[0] == 0xff && b[1]&0x80 != 0) {
		return nil, errLeadingZero
	}
	if b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b), nil
	}
	// Negative: complement and subtract one from the magnitude.
	comp := make([]byte, len(b))
	for i, c := range b {
		comp[i] = ^c
	}
	mag := new(big.Int).SetBytes(comp)
	mag.Add(mag, big.NewInt(1))
	return mag.Neg(mag), nil
}
