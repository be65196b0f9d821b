package der

import "github.com/dercodec/der/tlv"

// OctetString is the ASN.1 OCTET STRING type. On BER ingest, a constructed
// encoding is accepted and its leaf segments are concatenated into a single
// logical value; DER output is always the primitive encoding.
type OctetString []byte

func (s *OctetString) Tag() tlv.Tag { return tlv.Universal(tlv.TagOctetString, false) }

func (s *OctetString) ValueLen() int { return len(*s) }

func (s *OctetString) EncodeValue(w *tlv.Writer) error {
	w.Write(*s)
	return nil
}

func (s *OctetString) DecodeValue(r *tlv.Reader) error {
	b, err := tlv.ReadConstructedString(r, tlv.Universal(tlv.TagOctetString, false), r.Constructed())
	if err != nil {
		return err
	}
	*s = b
	return nil
}

func (s *OctetString) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, s) }
func (s *OctetString) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, s) }
