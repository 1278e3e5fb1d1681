package charatlas

import "testing"

// testKey builds a distinct key from a single character.
func testKey(c byte) Key {
	return makeKey(Glyph{Char: string(c)})
}

func TestLRUAdmitAllocatesSlotsInOrder(t *testing.T) {
	l := newLRUIndex(4)

	for i := 0; i < 4; i++ {
		slot, _, evicted := l.admit(testKey('a' + byte(i)))
		if slot != i {
			t.Errorf("admit #%d assigned slot %d, want %d", i, slot, i)
		}
		if evicted {
			t.Errorf("admit #%d evicted before capacity was reached", i)
		}
	}
	if l.len() != 4 {
		t.Errorf("len() = %d, want 4", l.len())
	}
}

func TestLRULookup(t *testing.T) {
	l := newLRUIndex(2)

	if _, ok := l.lookup(testKey('a')); ok {
		t.Error("lookup on empty index reported a hit")
	}

	l.admit(testKey('a'))
	slot, ok := l.lookup(testKey('a'))
	if !ok || slot != 0 {
		t.Errorf("lookup = (%d, %v), want (0, true)", slot, ok)
	}
}

func TestLRUEvictsLeastRecent(t *testing.T) {
	l := newLRUIndex(3)
	l.admit(testKey('a'))
	l.admit(testKey('b'))
	l.admit(testKey('c'))

	slot, evictedKey, evicted := l.admit(testKey('d'))
	if !evicted {
		t.Fatal("admit at capacity did not evict")
	}
	if evictedKey != testKey('a') {
		t.Errorf("evicted %v, want %v", evictedKey, testKey('a'))
	}
	if slot != 0 {
		t.Errorf("reused slot %d, want the evictee's slot 0", slot)
	}
	if _, ok := l.lookup(testKey('a')); ok {
		t.Error("evicted key still resident")
	}
}

func TestLRULookupRefreshesRecency(t *testing.T) {
	l := newLRUIndex(2)
	l.admit(testKey('a'))
	l.admit(testKey('b'))

	// Touch 'a' so 'b' becomes the eviction candidate.
	l.lookup(testKey('a'))

	_, evictedKey, evicted := l.admit(testKey('c'))
	if !evicted || evictedKey != testKey('b') {
		t.Errorf("evicted %v (evicted=%v), want %v", evictedKey, evicted, testKey('b'))
	}
	if _, ok := l.lookup(testKey('a')); !ok {
		t.Error("recently used key was evicted")
	}
}

func TestLRUSlotOwnershipIsExclusive(t *testing.T) {
	l := newLRUIndex(2)
	l.admit(testKey('a'))
	l.admit(testKey('b'))
	l.admit(testKey('c')) // evicts 'a', reuses slot 0

	slots := map[int]Key{}
	for _, c := range []byte{'b', 'c'} {
		slot, ok := l.lookup(testKey(c))
		if !ok {
			t.Fatalf("key %q not resident", c)
		}
		if prev, taken := slots[slot]; taken {
			t.Errorf("slot %d owned by both %v and %v", slot, prev, testKey(c))
		}
		slots[slot] = testKey(c)
	}
}

func TestLRUAdmitPresentKeyPanics(t *testing.T) {
	l := newLRUIndex(2)
	l.admit(testKey('a'))

	defer func() {
		if recover() == nil {
			t.Error("admit of present key did not panic")
		}
	}()
	l.admit(testKey('a'))
}

func TestLRUZeroCapacityAdmitPanics(t *testing.T) {
	l := newLRUIndex(0)

	defer func() {
		if recover() == nil {
			t.Error("admit into zero-capacity index did not panic")
		}
	}()
	l.admit(testKey('a'))
}
