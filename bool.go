package der

import "github.com/dercodec/der/tlv"

// Boolean is the ASN.1 BOOLEAN type. DER requires the single content octet
// to be exactly 0x00 (false) or 0xFF (true); on ingest, BER permits any
// nonzero octet to mean true.
type Boolean bool

func (b *Boolean) Tag() tlv.Tag { return tlv.Universal(tlv.TagBoolean, false) }

func (b *Boolean) ValueLen() int { return 1 }

func (b *Boolean) EncodeValue(w *tlv.Writer) error {
	if *b {
		w.WriteByte(0xff)
	} else {
		w.WriteByte(0x00)
	}
	return nil
}

func (b *Boolean) DecodeValue(r *tlv.Reader) error {
	if r.RemainingLen() != 1 {
		return valueError(r, b.Tag(), errWrongLength)
	}
	octet, err := r.ReadByte()
	if err != nil {
		return err
	}
	if octet != 0x00 && octet != 0xff && !r.IsParsingBER() {
		return valueError(r, b.Tag(), errNonCanonicalBoolean)
	}
	*b = octet != 0x00
	return nil
}

func (b *Boolean) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, b) }
func (b *Boolean) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, b) }
