package http2

// dynamicTable is the per-direction HPACK header table: the 61 static
// entries from RFC 7541 Appendix A, followed by whatever entries have been
// added dynamically. entries[0] is the most recently added field, which is
// always the lowest-numbered dynamic index (62), matching the table's
// "newest entries have the smallest index" rule.
//
// https://tools.ietf.org/html/rfc7541#section-2.3
type dynamicTable struct {
	entries []HeaderField
	size    int // sum of entrySize() over entries
	maxSize int // negotiated ceiling, settable via SETTINGS or a size update
}

// entrySize is the RFC 7541 section 4.1 accounting size of a field: the
// length of its name and value plus 32 bytes of bookkeeping overhead.
func entrySize(name, value []byte) int {
	return len(name) + len(value) + 32
}

func (t *dynamicTable) clear() {
	t.entries = t.entries[:0]
	t.size = 0
}

// setMaxSize applies a new ceiling, evicting the oldest entries until the
// table fits. A size of zero simply empties the table.
func (t *dynamicTable) setMaxSize(size int) {
	t.maxSize = size
	if size == 0 {
		t.clear()
		return
	}
	for t.size > t.maxSize && len(t.entries) > 0 {
		t.evictOldest()
	}
}

func (t *dynamicTable) evictOldest() {
	last := len(t.entries) - 1
	t.size -= entrySize(t.entries[last].key, t.entries[last].value)
	t.entries = t.entries[:last]
}

// add inserts a new entry at the front of the table, evicting from the
// back as needed. An entry larger than the whole table silently empties
// the table instead of being stored, per RFC 7541 section 4.4.
func (t *dynamicTable) add(name, value []byte) {
	sz := entrySize(name, value)
	if sz > t.maxSize {
		t.clear()
		return
	}

	for t.size+sz > t.maxSize {
		t.evictOldest()
	}

	hf := HeaderField{}
	hf.SetKeyBytes(name)
	hf.SetValueBytes(value)

	t.entries = append(t.entries, HeaderField{})
	copy(t.entries[1:], t.entries[:len(t.entries)-1])
	t.entries[0] = hf
	t.size += sz
}

// field resolves a 1-based HPACK index into a name/value pair, consulting
// the static table first and then the dynamic table.
func (t *dynamicTable) field(index int) (name, value []byte, ok bool) {
	if index < 1 {
		return nil, nil, false
	}
	if index <= len(staticTable) {
		e := staticTable[index-1]
		return e.key, e.value, true
	}

	dynIdx := index - len(staticTable) - 1
	if dynIdx >= len(t.entries) {
		return nil, nil, false
	}
	e := t.entries[dynIdx]
	return e.key, e.value, true
}

// indexOfField returns the 1-based index of an exact name+value match, or
// 0 if none exists. The static table is checked first, matching the
// encoder's preference for indices that never expire.
func (t *dynamicTable) indexOfField(name, value []byte) int {
	for i, e := range staticTable {
		if byteEqual(e.key, name) && byteEqual(e.value, value) {
			return i + 1
		}
	}
	for i, e := range t.entries {
		if byteEqual(e.key, name) && byteEqual(e.value, value) {
			return len(staticTable) + i + 1
		}
	}
	return 0
}

// indexOfName returns the 1-based index of a field whose name matches,
// regardless of value, or 0 if none exists.
func (t *dynamicTable) indexOfName(name []byte) int {
	for i, e := range staticTable {
		if byteEqual(e.key, name) {
			return i + 1
		}
	}
	for i, e := range t.entries {
		if byteEqual(e.key, name) {
			return len(staticTable) + i + 1
		}
	}
	return 0
}

func byteEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
