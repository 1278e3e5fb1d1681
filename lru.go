package charatlas

// lruEntry is a node in the recency list. Entries are owned by the index
// and recycled only through eviction.
type lruEntry struct {
	key  Key
	slot int

	// prev and next for the intrusive LRU doubly-linked list
	prev *lruEntry
	next *lruEntry
}

// lruIndex is an ordered key-to-slot mapping with strict least-recently-used
// eviction. Lookups refresh recency; admissions allocate slot numbers
// monotonically until the index first reaches capacity and reuse the
// evictee's slot afterwards. All operations are O(1).
//
// The index is not safe for concurrent use; the owning Atlas serializes
// access by construction.
type lruIndex struct {
	entries map[Key]*lruEntry

	// head is the most recently used entry, tail the least recently used.
	head *lruEntry
	tail *lruEntry

	capacity int

	// nextSlot is the next unallocated slot index while the atlas is
	// still filling. It only ever grows, up to capacity.
	nextSlot int
}

// newLRUIndex creates an index with the given fixed capacity.
func newLRUIndex(capacity int) *lruIndex {
	return &lruIndex{
		entries:  make(map[Key]*lruEntry, capacity),
		capacity: capacity,
	}
}

// len returns the number of live entries.
func (l *lruIndex) len() int {
	return len(l.entries)
}

// lookup returns the slot mapped to key, moving the entry to the
// most-recently-used position on a hit.
func (l *lruIndex) lookup(key Key) (int, bool) {
	entry, ok := l.entries[key]
	if !ok {
		return 0, false
	}
	l.moveToFront(entry)
	return entry.slot, true
}

// admit inserts key at the most-recently-used position and returns its
// assigned slot. While unused slots remain they are handed out in order;
// at capacity the least-recently-used entry is evicted and its slot
// reassigned. evicted reports the removed key when an eviction happened.
//
// Admitting a key that is already present is a programming error.
func (l *lruIndex) admit(key Key) (slot int, evicted Key, didEvict bool) {
	if _, ok := l.entries[key]; ok {
		panic("charatlas: admit of key already present")
	}
	if l.capacity <= 0 {
		panic("charatlas: admit into zero-capacity index")
	}

	if l.nextSlot < l.capacity {
		slot = l.nextSlot
		l.nextSlot++
	} else {
		victim := l.removeTail()
		slot = victim.slot
		evicted = victim.key
		didEvict = true
	}

	entry := &lruEntry{key: key, slot: slot}
	l.entries[key] = entry
	l.addToFront(entry)
	return slot, evicted, didEvict
}

// addToFront adds an entry at the most-recently-used end.
func (l *lruIndex) addToFront(entry *lruEntry) {
	entry.prev = nil
	entry.next = l.head

	if l.head != nil {
		l.head.prev = entry
	}
	l.head = entry

	if l.tail == nil {
		l.tail = entry
	}
}

// moveToFront moves an entry to the most-recently-used end.
func (l *lruIndex) moveToFront(entry *lruEntry) {
	if entry == l.head {
		return
	}
	l.remove(entry)
	l.addToFront(entry)
}

// remove unlinks an entry from the recency list (does not touch the map).
func (l *lruIndex) remove(entry *lruEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		l.head = entry.next
	}

	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		l.tail = entry.prev
	}

	entry.prev = nil
	entry.next = nil
}

// removeTail evicts and returns the least-recently-used entry.
func (l *lruIndex) removeTail() *lruEntry {
	entry := l.tail
	if entry == nil {
		panic("charatlas: eviction from empty index")
	}
	delete(l.entries, entry.key)
	l.remove(entry)
	return entry
}
