package tlv

// MaxRecursionDepth bounds how deeply the indefinite-length scanner will
// recurse into nested indefinite-length constructions. It defends against
// stack exhaustion on adversarial BER input. It is a compile-time constant;
// the limit cannot be changed per Reader or at run time.
const MaxRecursionDepth = 1024

// IndefiniteValueLength computes the byte length of an indefinite-length
// value without fully decoding it, so that callers can bound a nested reader
// over it regardless of whether the source used DER or BER. The reader's
// cursor must be positioned at the first byte of the value (the header,
// which carries the indefinite-length sentinel, must already have been
// consumed). On success the cursor is restored to that starting position and
// the returned length includes the two trailing end-of-content bytes.
//
// The algorithm is a one-pass look-ahead: it walks the value exactly as a
// decoder would, skipping definite-length TLVs by their declared length and
// recursing into nested indefinite-length TLVs, until it finds the
// end-of-content marker terminating the value at the current nesting level.
func (r *Reader) IndefiniteValueLength() (int, error) {
	start := r.pos
	if err := r.parseToEnd(0); err != nil {
		r.pos = start
		return 0, err
	}
	l := r.pos - start
	r.pos = start
	return l + 2, nil
}

// parseToEnd advances r past a sequence of sibling TLVs until it reaches an
// end-of-content marker (left unconsumed) or the end of the buffer. depth
// counts indefinite-length nesting to enforce [MaxRecursionDepth].
func (r *Reader) parseToEnd(depth int) error {
	if depth > MaxRecursionDepth {
		return r.errAt(KindRecursionLimitExceeded)
	}
	for {
		if r.IsFinished() || r.PeekEOC() {
			return nil
		}
		h, err := r.readHeaderAdvance()
		if err != nil {
			return err
		}
		if h.Length.IsIndefinite() {
			if err := r.parseToEnd(depth + 1); err != nil {
				return err
			}
			if err := r.consumeEOC(); err != nil {
				return err
			}
			continue
		}
		n := h.Length.Int()
		if n < 0 || n > int64(r.RemainingLen()) {
			return r.errAt(KindIncomplete)
		}
		r.pos += int(n)
	}
}

// ReadConstructedString reads the value of a primitive or BER
// constructed-encoding string with universal tag wantTag, concatenating the
// leaf segments of a constructed encoding in order. r must be bounded to
// exactly the TLV's value (as by [ReadNested]); the header identifying
// wantTag and its constructed bit has already been consumed by the caller.
// Mixed tags inside one constructed string fail with [KindUnexpectedTag].
func ReadConstructedString(r *Reader, wantTag Tag, constructed bool) ([]byte, error) {
	if !constructed {
		return r.ReadSlice(r.RemainingLen())
	}
	if !r.ber {
		return nil, r.errAt(KindOverlength)
	}
	var out []byte
	for !r.IsFinished() {
		h, err := r.PeekHeader()
		if err != nil {
			return nil, err
		}
		if !h.Tag.Equal(wantTag) {
			return nil, r.errUnexpectedTag(wantTag, h.Tag)
		}
		if _, err := r.readHeaderAdvance(); err != nil {
			return nil, err
		}
		var leaf []byte
		err = r.readNestedValue(h.Length, func(nr *Reader) error {
			var innerErr error
			leaf, innerErr = ReadConstructedString(nr, wantTag, h.Tag.Constructed)
			return innerErr
		})
		if err != nil {
			return nil, err
		}
		out = append(out, leaf...)
	}
	return out, nil
}
