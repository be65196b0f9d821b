package der

import (
	"math/big"
	"strings"

	"github.com/JesseCoretta/go-objectid"
	"github.com/dercodec/der/tlv"
)

// ObjectIdentifier is the ASN.1 OBJECT IDENTIFIER type, encoded per
// Rec. ITU-T X.690, Section 8.19: the first two arcs are combined into a
// single number (40*X + Y), and every arc from there on is encoded as a
// base-128 number with the high bit of all but its last octet set.
//
// Parsing and dotted-string formatting are delegated to
// [github.com/JesseCoretta/go-objectid], which already encodes the arc
// arithmetic and validation this type needs; ObjectIdentifier only adds the
// X.690 wire encoding on top.
type ObjectIdentifier struct {
	dn *objectid.DotNotation
}

// NewObjectIdentifier parses dotted, the dotted-decimal string form of an
// OID (e.g. "1.2.840.113549.1.7.1"), and returns it as an ObjectIdentifier.
func NewObjectIdentifier(dotted string) (ObjectIdentifier, error) {
	dn, err := objectid.NewDotNotation(dotted)
	if err != nil {
		return ObjectIdentifier{}, err
	}
	return ObjectIdentifier{dn: dn}, nil
}

// String returns o's dotted-decimal representation.
func (o ObjectIdentifier) String() string {
	if o.dn == nil {
		return ""
	}
	return o.dn.String()
}

// Equal reports whether o and other identify the same OID.
func (o ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return o.String() == other.String()
}

func (o *ObjectIdentifier) Tag() tlv.Tag { return tlv.Universal(tlv.TagOID, false) }

func (o *ObjectIdentifier) ValueLen() int { return len(encodeOIDContent(o.arcs())) }

func (o *ObjectIdentifier) EncodeValue(w *tlv.Writer) error {
	w.Write(encodeOIDContent(o.arcs()))
	return nil
}

func (o *ObjectIdentifier) DecodeValue(r *tlv.Reader) error {
	b, err := r.ReadSlice(r.RemainingLen())
	if err != nil {
		return err
	}
	arcs, err := decodeOIDContent(b)
	if err != nil {
		return valueError(r, o.Tag(), err)
	}
	dotted := joinArcs(arcs)
	dn, err := objectid.NewDotNotation(dotted)
	if err != nil {
		return valueError(r, o.Tag(), err)
	}
	o.dn = dn
	return nil
}

func (o *ObjectIdentifier) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, o) }
func (o *ObjectIdentifier) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, o) }

// arcs splits o's dotted-decimal string into its arc values.
func (o *ObjectIdentifier) arcs() []*big.Int {
	parts := strings.Split(o.String(), ".")
	out := make([]*big.Int, len(parts))
	for i, p := range parts {
		n, ok := new(big.Int).SetString(p, 10)
		if !ok {
			n = big.NewInt(0)
		}
		out[i] = n
	}
	return out
}

func joinArcs(arcs []*big.Int) string {
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ".")
}

// encodeOIDContent encodes arcs as X.690 OBJECT IDENTIFIER content octets.
// It requires at least two arcs, per the X*40+Y combination rule.
func encodeOIDContent(arcs []*big.Int) []byte {
	if len(arcs) < 2 {
		return nil
	}
	first := new(big.Int).Mul(arcs[0], big.NewInt(40))
	first.Add(first, arcs[1])
	out := encodeArc(nil, first)
	for _, a := range arcs[2:] {
		out = encodeArc(out, a)
	}
	return out
}

// encodeArc appends the base-128 encoding of n to dst, most-significant
// group first, with the high bit set on every group but the last.
func encodeArc(dst []byte, n *big.Int) []byte {
	if n.Sign() == 0 {
		return append(dst, 0x00)
	}
	var groups []byte
	v := new(big.Int).Set(n)
	mask := big.NewInt(0x7f)
	for v.Sign() > 0 {
		g := new(big.Int).And(v, mask)
		groups = append(groups, byte(g.Uint64()))
		v.Rsh(v, 7)
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	for i := range groups {
		if i != len(groups)-1 {
			groups[i] |= 0x80
		}
	}
	return append(dst, groups...)
}

// decodeOIDContent decodes X.690 OBJECT IDENTIFIER content octets b into
// their full arc values, reversing the X*40+Y combination of the first two
// arcs.
func decodeOIDContent(b []byte) ([]*big.Int, error) {
	if len(b) == 0 {
		return nil, errEmptyOID
	}
	var rawArcs []*big.Int
	i := 0
	for i < len(b) {
		n := new(big.Int)
		for {
			if i >= len(b) {
				return nil, errNegativeLength
			}
			c := b[i]
			i++
			n.Lsh(n, 7)
			n.Or(n, big.NewInt(int64(c&0x7f)))
			if c&0x80 == 0 {
				break
			}
		}
		rawArcs = append(rawArcs, n)
	}
	if len(rawArcs) == 0 {
		return nil, errEmptyOID
	}
	first := rawArcs[0]
	var x, y *big.Int
	if first.Cmp(big.NewInt(80)) < 0 {
		x = new(big.Int).Div(first, big.NewInt(40))
		y = new(big.Int).Mod(first, big.NewInt(40))
	} else {
		x = big.NewInt(2)
		y = new(big.Int).Sub(first, big.NewInt(80))
	}
	arcs := append([]*big.Int{x, y}, rawArcs[1:]...)
	return arcs, nil
}
