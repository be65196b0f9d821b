package tlv

// Header is a (Tag, Length) pair: the two fields that precede every ASN.1
// data value's content octets.
type Header struct {
	Tag    Tag
	Length Length
}

// byteLen returns the number of bytes h occupies on the wire. It backs
// [HeaderLen].
func (h Header) byteLen() int {
	l := 1 // identifier octet
	if h.Tag.Number > 30 {
		l += tagNumberLen(h.Tag.Number)
	}
	l++ // first length octet
	if !h.Length.IsIndefinite() && h.Length.Int() >= 0x80 {
		l += lengthByteLen(h.Length.Int())
	}
	return l
}

// encodeHeader appends the DER encoding of h to dst using the shortest valid
// form. It is the caller's responsibility to ensure h.Length is definite;
// DER never emits the indefinite sentinel.
func encodeHeader(dst []byte, h Header) []byte {
	b := byte(h.Tag.Class) << 6
	if h.Tag.Constructed {
		b |= 0x20
	}
	if h.Tag.Number <= 30 {
		b |= byte(h.Tag.Number)
		dst = append(dst, b)
	} else {
		dst = append(dst, b|0x1f)
		dst = encodeTagNumber(dst, h.Tag.Number)
	}
	return encodeLength(dst, h.Length)
}

// decodeHeader decodes a Header starting at b[0]. It returns the decoded
// Header, the number of bytes consumed, and an error if the encoding is
// truncated or malformed. decodeHeader accepts both DER and BER encodings
// (including the indefinite-length sentinel); it is the caller's
// responsibility to reject BER-only forms when strict DER is required.
func decodeHeader(b []byte) (h Header, consumed int, err error) {
	if len(b) == 0 {
		return Header{}, 0, errIncomplete
	}
	first := b[0]
	tag := Tag{
		Class:       Class(first >> 6),
		Constructed: first&0x20 != 0,
		Number:      uint64(first & 0x1f),
	}
	n := 1
	if tag.Number == 0x1f {
		num, c, err := decodeTagNumber(b[1:])
		if err != nil {
			return Header{}, 0, err
		}
		tag.Number = num
		n += c
	}
	if len(b) <= n {
		return Header{}, 0, errIncomplete
	}
	length, c, err := decodeLength(b[n:])
	if err != nil {
		return Header{}, 0, err
	}
	n += c
	return Header{Tag: tag, Length: length}, n, nil
}
