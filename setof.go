package der

import (
	"bytes"
	"sort"

	"github.com/dercodec/der/tlv"
)

// SetOfVec is the ASN.1 SET OF type: an unordered collection encoded, per
// DER, in ascending order of each element's full TLV encoding, with
// duplicate encodings rejected. T is constrained to [Message] rather than
// [Value] so that SetOfVec can hold CHOICE-shaped elements (such as [Any] or
// a CMS SignerIdentifier) whose tag is not fixed. Since Go generics give no
// way to construct a zero element of a pointer-shaped type parameter,
// SetOfVec takes an explicit factory instead of reaching for reflection.
type SetOfVec[T Message] struct {
	items   []T
	newElem func() T
}

// NewSetOfVec returns an empty SetOfVec. newElem must return a freshly
// allocated, zero-valued T (e.g. func() *Any { return new(Any) }); it is
// used by DecodeValue to allocate each decoded element.
func NewSetOfVec[T Message](newElem func() T) *SetOfVec[T] { return &SetOfVec[T]{newElem: newElem} }

// Len returns the number of elements currently held.
func (s *SetOfVec[T]) Len() int { return len(s.items) }

// Items returns the elements in their current canonical order. The returned
// slice aliases s's internal storage and must not be mutated.
func (s *SetOfVec[T]) Items() []T { return s.items }

// Insert adds v to s in canonical position, determined by comparing the DER
// encoding of v against the existing elements. It reports an error if v's
// encoding is byte-identical to an element already present, per DER's
// prohibition on duplicate SET OF elements.
func (s *SetOfVec[T]) Insert(v T) error {
	enc, err := MarshalMessage(v)
	if err != nil {
		return err
	}
	i := sort.Search(len(s.items), func(i int) bool {
		ei, _ := MarshalMessage(s.items[i])
		return bytes.Compare(ei, enc) >= 0
	})
	if i < len(s.items) {
		if ei, _ := MarshalMessage(s.items[i]); bytes.Equal(ei, enc) {
			return &tlv.Error{Kind: tlv.KindDuplicateElement}
		}
	}
	s.items = append(s.items, v)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return nil
}

func (s *SetOfVec[T]) Tag() tlv.Tag { return tlv.Universal(tlv.TagSet, true) }

func (s *SetOfVec[T]) ValueLen() int {
	n := 0
	for _, v := range s.items {
		b, _ := MarshalMessage(v)
		n += len(b)
	}
	return n
}

func (s *SetOfVec[T]) EncodeValue(w *tlv.Writer) error {
	for _, v := range s.items {
		if err := v.EncodeDER(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeValue reads elements of s's value, bounded by the caller to exactly
// this SET's content, until the nested reader is drained. Elements are
// stored in the order they are decoded; callers that need a canonical
// ordering check after BER ingest should re-derive it rather than rely on
// wire order, since BER does not itself enforce the DER ordering rule.
func (s *SetOfVec[T]) DecodeValue(r *tlv.Reader) error {
	s.items = nil
	for !r.IsFinished() {
		v := s.newElem()
		if err := v.DecodeDER(r); err != nil {
			return err
		}
		s.items = append(s.items, v)
	}
	return nil
}

func (s *SetOfVec[T]) EncodeDER(w *tlv.Writer) error { return EncodeDER(w, s) }
func (s *SetOfVec[T]) DecodeDER(r *tlv.Reader) error { return DecodeDER(r, s) }
