package tlv

// MaxLength is the largest value length this package will encode or decode,
// matching the implementation maximum required by the specification (at
// least 2^24 bytes; we use the largest value four definite-length bytes can
// hold).
const MaxLength = 1<<32 - 1

// Length is the length field of a [Header]. It is either a definite,
// non-negative byte count or the BER indefinite-length sentinel. Two
// indefinite Lengths always compare equal; a definite Length orders by its
// numeric value.
type Length struct {
	n          int64
	indefinite bool
}

// Definite returns a definite Length of n bytes.
func Definite(n int64) Length { return Length{n: n} }

// Indefinite is the BER indefinite-length sentinel.
var Indefinite = Length{indefinite: true}

// IsIndefinite reports whether l is the indefinite-length sentinel.
func (l Length) IsIndefinite() bool { return l.indefinite }

// Int returns the definite byte count of l. It panics if l is indefinite;
// callers must check [Length.IsIndefinite] first.
func (l Length) Int() int64 {
	if l.indefinite {
		panic("tlv: Int called on indefinite Length")
	}
	return l.n
}

// Equal reports whether l and other represent the same length. Two
// indefinite lengths are always equal.
func (l Length) Equal(other Length) bool {
	if l.indefinite || other.indefinite {
		return l.indefinite == other.indefinite
	}
	return l.n == other.n
}

// lengthByteLen returns the number of bytes needed to hold n in the
// long-form length encoding (big-endian, no leading zero byte).
func lengthByteLen(n int64) int {
	l := 1
	for v := n; v > 0xff; v >>= 8 {
		l++
	}
	return l
}

// encodeLength appends the DER encoding of l to dst. DER forbids the
// indefinite sentinel; the caller (Writer) rejects it before this is called.
func encodeLength(dst []byte, l Length) []byte {
	n := l.n
	if n < 0x80 {
		return append(dst, byte(n))
	}
	nb := lengthByteLen(n)
	dst = append(dst, 0x80|byte(nb))
	for i := nb - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(uint(i)*8)))
	}
	return dst
}

// decodeLength decodes the length octets starting at b[0]. It returns the
// decoded Length, the number of bytes consumed, and an error following the
// rules of Section 4.1 of the specification: 0x00-0x7f is a one-byte
// definite length, 0x81-0x84 introduce 1-4 big-endian length bytes
// (leading zero bytes are tolerated on ingest), 0x80 is the indefinite
// sentinel, and any other first byte is [errOverlength].
func decodeLength(b []byte) (l Length, consumed int, err error) {
	if len(b) == 0 {
		return Length{}, 0, errIncomplete
	}
	first := b[0]
	if first < 0x80 {
		return Definite(int64(first)), 1, nil
	}
	if first == 0x80 {
		return Indefinite, 1, nil
	}
	nb := int(first &^ 0x80)
	if nb > 4 {
		return Length{}, 0, errOverlength
	}
	if len(b) < 1+nb {
		return Length{}, 0, errIncomplete
	}
	var n int64
	for i := 0; i < nb; i++ {
		if n > (1<<55)-1 {
			return Length{}, 0, errOverflow
		}
		n = n<<8 | int64(b[1+i])
	}
	if n > MaxLength {
		return Length{}, 0, errOverflow
	}
	return Definite(n), 1 + nb, nil
}
