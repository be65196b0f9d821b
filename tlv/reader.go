package tlv

// Reader is a streaming cursor over a borrowed byte slice. It never copies
// or retains ownership of its input; callers must not mutate the slice while
// a Reader over it is in use. Readers are single-threaded: every method is
// synchronous and none of them block.
//
// A Reader constructed with [NewReader] parses strict DER: the indefinite
// length sentinel and BER constructed strings are rejected. Use
// [NewBERReader] to additionally accept those BER productions.
type Reader struct {
	buf []byte
	pos int
	ber bool

	// base is added to pos when annotating errors, so that a bounded nested
	// reader reports positions relative to the original input rather than
	// to its own sub-slice.
	base int

	// constructed records the constructed bit of the header that bounded this
	// reader to its value, so that a [Value.DecodeValue] implementation can
	// tell a BER constructed encoding from a primitive one without the
	// header being threaded through its call signature.
	constructed bool
}

// Constructed reports whether the header that bounded r to its current value
// used the constructed encoding. It is meaningless on a Reader that was not
// produced by bounding to a TLV's value (e.g. the top-level Reader returned
// by [NewReader]).
func (r *Reader) Constructed() bool { return r.constructed }

// NewReader returns a Reader over b that parses strict DER.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// NewBERReader returns a Reader over b that additionally accepts BER
// indefinite lengths and constructed strings.
func NewBERReader(b []byte) *Reader {
	return &Reader{buf: b, ber: true}
}

// IsParsingBER reports whether r was constructed to accept BER productions.
func (r *Reader) IsParsingBER() bool { return r.ber }

// InputLen returns the total length of the slice r was constructed from.
func (r *Reader) InputLen() int { return len(r.buf) }

// Position returns r's current cursor offset within its input slice.
func (r *Reader) Position() int { return r.pos }

// RemainingLen returns the number of unread bytes.
func (r *Reader) RemainingLen() int { return len(r.buf) - r.pos }

// IsFinished reports whether r has no unread bytes.
func (r *Reader) IsFinished() bool { return r.pos == len(r.buf) }

// Rewind moves the cursor back by offset bytes. It panics if offset is
// negative or would move the cursor before the start of the input; nested
// readers never need to rewind past their own bound.
func (r *Reader) Rewind(offset int) {
	if offset < 0 || offset > r.pos {
		panic("tlv: invalid rewind")
	}
	r.pos -= offset
}

func (r *Reader) errAt(kind Kind) error {
	return &Error{Kind: kind, Position: r.base + r.pos}
}

func (r *Reader) errUnexpectedTag(expected, actual Tag) error {
	return &Error{Kind: KindUnexpectedTag, Position: r.base + r.pos, Expected: expected, Actual: actual}
}

func (r *Reader) errLength(tag Tag, err error) error {
	return &Error{Kind: KindLength, Position: r.base + r.pos, Tag: tag, Err: err}
}

func (r *Reader) errValue(tag Tag, err error) error {
	return &Error{Kind: KindValue, Position: r.base + r.pos, Tag: tag, Err: err}
}

// PeekByte returns the next unread byte without advancing the cursor.
func (r *Reader) PeekByte() (byte, error) {
	if r.IsFinished() {
		return 0, r.errAt(KindIncomplete)
	}
	return r.buf[r.pos], nil
}

// PeekTag decodes the tag of the next TLV without advancing the cursor.
func (r *Reader) PeekTag() (Tag, error) {
	h, err := r.PeekHeader()
	if err != nil {
		return Tag{}, err
	}
	return h.Tag, nil
}

// PeekHeader decodes the header of the next TLV without advancing the
// cursor. If the header uses the indefinite-length sentinel and r is not
// parsing BER, an error is returned.
func (r *Reader) PeekHeader() (Header, error) {
	h, _, err := r.peekHeaderN()
	return h, err
}

func (r *Reader) peekHeaderN() (Header, int, error) {
	h, n, err := decodeHeader(r.buf[r.pos:])
	if err != nil {
		return Header{}, 0, withPosition(err, r.base+r.pos)
	}
	if h.Length.IsIndefinite() {
		if !r.ber {
			return Header{}, 0, r.errAt(KindOverlength)
		}
		if !h.Tag.Constructed {
			expected := h.Tag
			expected.Constructed = true
			return Header{}, 0, r.errUnexpectedTagAt(expected, h.Tag, r.pos)
		}
	}
	return h, n, nil
}

func (r *Reader) errUnexpectedTagAt(expected, actual Tag, pos int) error {
	return &Error{Kind: KindUnexpectedTag, Position: r.base + pos, Expected: expected, Actual: actual}
}

// PeekEOC reports whether the next two bytes are the end-of-content marker
// 0x00 0x00. It never reports true past the end of the buffer and never
// advances the cursor.
func (r *Reader) PeekEOC() bool {
	return r.RemainingLen() >= 2 && r.buf[r.pos] == 0 && r.buf[r.pos+1] == 0
}

// ReadSlice borrows the next n bytes of input, advancing the cursor past
// them. The returned slice aliases r's underlying buffer and is only valid
// for as long as that buffer is not mutated.
func (r *Reader) ReadSlice(n int) ([]byte, error) {
	if n < 0 || n > r.RemainingLen() {
		return nil, r.errAt(KindIncomplete)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadInto copies len(buf) bytes from the input into buf, advancing the
// cursor.
func (r *Reader) ReadInto(buf []byte) error {
	b, err := r.ReadSlice(len(buf))
	if err != nil {
		return err
	}
	copy(buf, b)
	return nil
}

// ReadByte reads and returns the next byte, advancing the cursor.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.ReadSlice(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// readHeaderAdvance decodes the next header and advances the cursor past it.
func (r *Reader) readHeaderAdvance() (Header, error) {
	h, n, err := r.peekHeaderN()
	if err != nil {
		return Header{}, err
	}
	r.pos += n
	return h, nil
}

// ReadHeader decodes the next TLV header and advances the cursor past it.
// Callers that only need to inspect the header without consuming it should
// use [Reader.PeekHeader] instead.
func (r *Reader) ReadHeader() (Header, error) { return r.readHeaderAdvance() }

// consumeEOC advances the cursor past an end-of-content marker, or fails with
// [KindEndOfContent] if the next two bytes are not one.
func (r *Reader) consumeEOC() error {
	if !r.PeekEOC() {
		return r.errAt(KindEndOfContent)
	}
	r.pos += 2
	return nil
}

// consumeOptionalEOC advances the cursor past an end-of-content marker if
// one is present. It is used by [Decode] and [Finish] after a BER decode:
// under BER, a value's EOC is opportunistically consumed by whichever
// operation finishes reading the value.
func (r *Reader) consumeOptionalEOC() {
	if r.PeekEOC() {
		r.pos += 2
	}
}

// TLVBytes borrows the full encoding (header and value) of the next TLV
// without interpreting it, advancing the cursor past it. Under BER, an
// indefinite-length TLV is returned as a copy with a definite-length header
// in place of the indefinite one and without its end-of-content marker. The
// value bytes are copied as they appear in the source, so indefinite-length
// encodings nested inside them are kept.
func (r *Reader) TLVBytes() ([]byte, error) {
	start := r.pos
	h, err := r.readHeaderAdvance()
	if err != nil {
		return nil, err
	}
	if !h.Length.IsIndefinite() {
		total := (r.pos - start) + int(h.Length.Int())
		r.pos = start
		return r.ReadSlice(total)
	}
	// Indefinite: give the returned bytes a definite header so they are
	// self-contained.
	total, err := r.IndefiniteValueLength()
	if err != nil {
		return nil, err
	}
	valueLen := total - 2
	value, err := r.ReadSlice(valueLen)
	if err != nil {
		return nil, err
	}
	if err := r.consumeEOC(); err != nil {
		return nil, err
	}
	w := NewWriter()
	w.WriteHeader(Header{Tag: h.Tag, Length: Definite(int64(len(value)))})
	w.Write(value)
	return w.Bytes(), nil
}

// Sequence reads a SEQUENCE header, bounds a nested reader to its value, and
// invokes f with that reader. It requires the nested reader to be fully
// drained when f returns.
func (r *Reader) Sequence(f func(*Reader) error) error {
	return r.taggedConstructed(Universal(TagSequence, true), f)
}

// Set reads a SET header, bounds a nested reader to its value, and invokes f
// with that reader. It requires the nested reader to be fully drained when f
// returns.
func (r *Reader) Set(f func(*Reader) error) error {
	return r.taggedConstructed(Universal(TagSet, true), f)
}

func (r *Reader) taggedConstructed(want Tag, f func(*Reader) error) error {
	h, err := r.PeekHeader()
	if err != nil {
		return err
	}
	if !h.Tag.Equal(want) || h.Tag.Constructed != want.Constructed {
		return r.errUnexpectedTag(want, h.Tag)
	}
	if _, err := r.readHeaderAdvance(); err != nil {
		return err
	}
	return r.readNestedValueTagged(h.Length, h.Tag.Constructed, f)
}

// ContextSpecific reads a context-specific header with the given tag number,
// bounds a nested reader to its value, and invokes f with that reader. The
// caller indicates whether the expected tag uses the constructed encoding.
// It is the low-level primitive EXPLICIT and IMPLICIT field wrappers build
// on; most callers want the higher-level helpers in the der package instead.
func (r *Reader) ContextSpecific(number uint64, constructed bool, f func(*Reader) error) error {
	return r.taggedConstructed(ContextSpecific(number, constructed), f)
}

// readNestedValue is the shared implementation behind ReadNested: it bounds
// a sub-reader to a TLV's value, given the header's Length and whether that
// length is indefinite.
func (r *Reader) readNestedValue(length Length, f func(*Reader) error) error {
	return r.readNestedValueTagged(length, false, f)
}

// readNestedValueTagged is readNestedValue plus the constructed bit of the
// header being bounded, recorded on the sub-reader for [Reader.Constructed].
func (r *Reader) readNestedValueTagged(length Length, constructed bool, f func(*Reader) error) error {
	var contentLen int
	if length.IsIndefinite() {
		total, err := r.IndefiniteValueLength()
		if err != nil {
			return err
		}
		contentLen = total - 2
	} else {
		contentLen = int(length.Int())
	}
	if contentLen < 0 || contentLen > r.RemainingLen() {
		return r.errAt(KindIncomplete)
	}
	sub := &Reader{buf: r.buf[r.pos : r.pos+contentLen], ber: r.ber, base: r.base + r.pos, constructed: constructed}
	if err := f(sub); err != nil {
		return err
	}
	if !sub.IsFinished() {
		return &Error{
			Kind:      KindTrailingData,
			Position:  sub.base + sub.pos,
			Decoded:   sub.pos,
			Remaining: sub.RemainingLen(),
		}
	}
	r.pos += contentLen
	if length.IsIndefinite() {
		return r.consumeEOC()
	}
	return nil
}

// ReadNested constructs a sub-reader bounded to the value denoted by header
// h (which the caller has already consumed), invokes f with that reader,
// and requires the sub-reader to be fully drained. If h's length is
// indefinite, the bound is computed by the indefinite-length scanner and the
// trailing end-of-content marker is consumed from r after f returns.
func ReadNested(r *Reader, h Header, f func(*Reader) error) error {
	return r.readNestedValueTagged(h.Length, h.Tag.Constructed, f)
}

// Decode calls a typed decode function dec and, if r is parsing BER and dec
// succeeds, opportunistically consumes a following end-of-content marker
// (present when dec's caller bounded r to an indefinite-length value whose
// EOC was not itself part of that bound). An error from dec is returned
// unchanged; Decode adds no position annotation of its own.
func Decode[T any](r *Reader, dec func(*Reader) (T, error)) (T, error) {
	v, err := dec(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.ber {
		r.consumeOptionalEOC()
	}
	return v, nil
}

// Finish verifies that r is drained (after optionally consuming a trailing
// BER end-of-content marker) and returns value, or reports
// [KindTrailingData] naming both the bytes decoded and the bytes remaining.
func Finish[T any](r *Reader, value T) (T, error) {
	if r.ber {
		r.consumeOptionalEOC()
	}
	if !r.IsFinished() {
		var zero T
		return zero, &Error{
			Kind:      KindTrailingData,
			Position:  r.base + r.pos,
			Decoded:   r.pos,
			Remaining: r.RemainingLen(),
		}
	}
	return value, nil
}
