package http2

import (
	"errors"
	"sync"
)

// HPACK implements the stateful HPACK compressor defined in RFC 7541. The
// same type is used on the encode and decode side of a connection; each
// direction gets its own instance and therefore its own dynamic table, as
// the two are never shared.
//
// https://tools.ietf.org/html/rfc7541
type HPACK struct {
	table dynamicTable

	// DisableCompression turns off Huffman coding of literal strings. Off
	// by default.
	DisableCompression bool

	pendingSizeUpdate bool
	pendingSize       int
}

var (
	errInvalidIndex    = errors.New("http2: invalid HPACK table index")
	errTableSizeUpdate = errors.New("http2: dynamic table size update exceeds negotiated maximum")
)

// bitPattern is one of the five mutually-exclusive field representations
// HPACK defines, identified by its leading bits.
//
// https://tools.ietf.org/html/rfc7541#section-6
type bitPattern struct {
	value uint32
	bits  uint8
}

var (
	bitPatternIndexed      = bitPattern{value: 1, bits: 1}
	bitPatternIncremental  = bitPattern{value: 1, bits: 2}
	bitPatternNoIndexing   = bitPattern{value: 0, bits: 4}
	bitPatternNeverIndexed = bitPattern{value: 1, bits: 4}
	bitPatternSizeUpdate   = bitPattern{value: 1, bits: 3}
)

var hpackPool = sync.Pool{
	New: func() interface{} {
		hp := &HPACK{}
		hp.table.maxSize = int(defaultHeaderTableSize)
		return hp
	},
}

// AcquireHPACK gets an HPACK codec from the pool.
func AcquireHPACK() *HPACK {
	return hpackPool.Get().(*HPACK)
}

// ReleaseHPACK resets hp and returns it to the pool.
func ReleaseHPACK(hp *HPACK) {
	hp.Reset()
	hpackPool.Put(hp)
}

// Reset clears the dynamic table and any pending size-update instruction.
func (hp *HPACK) Reset() {
	hp.table.clear()
	hp.table.maxSize = int(defaultHeaderTableSize)
	hp.DisableCompression = false
	hp.pendingSizeUpdate = false
	hp.pendingSize = 0
}

// SetMaxTableSize sets the ceiling this codec may grow its dynamic table
// to. On the encoder side this is driven by the peer's
// SETTINGS_HEADER_TABLE_SIZE and causes a dynamic table size update
// instruction to be emitted with the next encoded field. The decoder side
// does not act on it: Next bounds a peer's size-update instructions by the
// table's current maximum size, which this call leaves unchanged.
func (hp *HPACK) SetMaxTableSize(size int) {
	hp.pendingSizeUpdate = true
	hp.pendingSize = size
}

// DynamicTableSize returns the current size, in HPACK entry-size units, of
// the dynamic table.
func (hp *HPACK) DynamicTableSize() int {
	return hp.table.size
}

// AppendHeader encodes hf and appends its wire representation to dst,
// returning the extended slice. When store is true and the field is not
// marked sensitive, the field is added to the dynamic table and may be
// referenced by later fields in the same or a subsequent header block.
func (hp *HPACK) AppendHeader(dst []byte, hf *HeaderField, store bool) []byte {
	w := bitWriter{buf: dst, bitsSet: len(dst) * 8}

	if hp.pendingSizeUpdate {
		hp.table.setMaxSize(hp.pendingSize)
		w.writeBits(bitPatternSizeUpdate.value, bitPatternSizeUpdate.bits)
		w.writeHpackInteger(uint64(hp.pendingSize))
		hp.pendingSizeUpdate = false
	}

	name, value := hf.KeyBytes(), hf.ValueBytes()

	if hf.IsSensible() {
		hp.encodeLiteral(&w, bitPatternNeverIndexed, name, value, false)
		return w.buf
	}

	if idx := hp.table.indexOfField(name, value); idx > 0 {
		w.writeBits(bitPatternIndexed.value, bitPatternIndexed.bits)
		w.writeHpackInteger(uint64(idx))
		return w.buf
	}

	if !store {
		hp.encodeLiteral(&w, bitPatternNoIndexing, name, value, false)
		return w.buf
	}

	hp.encodeLiteral(&w, bitPatternIncremental, name, value, true)
	return w.buf
}

func (hp *HPACK) encodeLiteral(w *bitWriter, pattern bitPattern, name, value []byte, index bool) {
	nameIdx := hp.table.indexOfName(name)
	if index {
		hp.table.add(name, value)
	}

	w.writeBits(pattern.value, pattern.bits)
	if nameIdx > 0 {
		w.writeHpackInteger(uint64(nameIdx))
	} else {
		w.writeHpackInteger(0)
		w.writeHpackString(name, !hp.DisableCompression)
	}
	w.writeHpackString(value, !hp.DisableCompression)
}

// Next decodes a single header field from the front of src, storing it in
// hf, and returns whatever of src was not consumed. Leading dynamic table
// size updates are applied and skipped transparently; if src is exhausted
// after consuming only size updates, hf is left empty and no error is
// returned.
func (hp *HPACK) Next(hf *HeaderField, src []byte) ([]byte, error) {
	r := bitReader{buf: src}
	hf.Reset()

	for r.bitsRemaining() > 0 {
		switch {
		case r.readBitPattern(bitPatternSizeUpdate.value, int(bitPatternSizeUpdate.bits)):
			size, err := r.readInteger()
			if err != nil {
				return src, err
			}
			if int(size) > hp.table.maxSize {
				return src, errTableSizeUpdate
			}
			hp.table.setMaxSize(int(size))
			continue

		case r.readBitPattern(bitPatternIndexed.value, int(bitPatternIndexed.bits)):
			idx, err := r.readInteger()
			if err != nil {
				return src, err
			}
			if idx == 0 {
				return src, errInvalidIndex
			}
			name, value, ok := hp.table.field(int(idx))
			if !ok {
				return src, errInvalidIndex
			}
			hf.SetKeyBytes(name)
			hf.SetValueBytes(value)
			return src[r.offset/8:], nil

		case r.readBitPattern(bitPatternIncremental.value, int(bitPatternIncremental.bits)):
			if err := hp.decodeLiteral(&r, hf, true); err != nil {
				return src, err
			}
			return src[r.offset/8:], nil

		case r.readBitPattern(bitPatternNeverIndexed.value, int(bitPatternNeverIndexed.bits)):
			if err := hp.decodeLiteral(&r, hf, false); err != nil {
				return src, err
			}
			hf.sensible = true
			return src[r.offset/8:], nil

		case r.readBitPattern(bitPatternNoIndexing.value, int(bitPatternNoIndexing.bits)):
			if err := hp.decodeLiteral(&r, hf, false); err != nil {
				return src, err
			}
			return src[r.offset/8:], nil

		default:
			return src, errInvalidIndex
		}
	}

	return src[r.offset/8:], nil
}

func (hp *HPACK) decodeLiteral(r *bitReader, hf *HeaderField, index bool) error {
	nameIdx, err := r.readInteger()
	if err != nil {
		return err
	}

	var name []byte
	if nameIdx == 0 {
		name, err = r.readHpackString()
		if err != nil {
			return err
		}
	} else {
		n, _, ok := hp.table.field(int(nameIdx))
		if !ok {
			return errInvalidIndex
		}
		name = n
	}

	value, err := r.readHpackString()
	if err != nil {
		return err
	}

	hf.SetKeyBytes(name)
	hf.SetValueBytes(value)

	if index {
		hp.table.add(name, value)
	}
	return nil
}
