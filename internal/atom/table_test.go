package atom

import "testing"

func TestNew_ReservesNoneForEmptyString(t *testing.T) {
	tab := New()
	if got := tab.Intern(""); got != None {
		t.Fatalf("Intern(\"\") = %v, want None", got)
	}
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tab.Len())
	}
}

func TestIntern_DeduplicatesEqualStrings(t *testing.T) {
	tab := New()
	a := tab.Intern("foo")
	b := tab.Intern("foo")
	if a != b {
		t.Fatalf("Intern(\"foo\") twice produced different IDs: %v, %v", a, b)
	}
	if c := tab.Intern("bar"); c == a {
		t.Fatalf("Intern(\"bar\") collided with Intern(\"foo\")")
	}
}

func TestIntern_DetachesFromCallerBackingArray(t *testing.T) {
	tab := New()
	buf := []byte("mutable")
	id := tab.Intern(string(buf))
	buf[0] = 'X'
	if got := tab.MustLookup(id); got != "mutable" {
		t.Fatalf("MustLookup(id) = %q, want %q", got, "mutable")
	}
}

func TestLookup_UnknownIDReturnsFalse(t *testing.T) {
	tab := New()
	tab.Intern("x")
	if _, ok := tab.Lookup(ID(999)); ok {
		t.Fatalf("Lookup of an ID never produced by this table should report ok=false")
	}
}

func TestMustLookup_PanicsOnInvalidID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustLookup on an invalid ID should panic")
		}
	}()
	tab := New()
	tab.MustLookup(ID(999))
}
