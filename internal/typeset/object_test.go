package typeset

import "testing"

func TestNewObject_StructuralDedup(t *testing.T) {
	in := New()
	x := in.InternString("x")
	a := in.NewObjectLiteral([]PropertyRecord{{Name: x, Read: String, Write: String}})
	b := in.NewObjectLiteral([]PropertyRecord{{Name: x, Read: String, Write: String}})
	if a != b {
		t.Fatalf("structurally identical objects interned to different ids: %v != %v", a, b)
	}
}

func TestNewObject_PropertyOrderIndependent(t *testing.T) {
	in := New()
	x, y := in.InternString("x"), in.InternString("y")
	a := in.NewObjectLiteral([]PropertyRecord{
		{Name: x, Read: String, Write: String},
		{Name: y, Read: Number, Write: Number},
	})
	b := in.NewObjectLiteral([]PropertyRecord{
		{Name: y, Read: Number, Write: Number},
		{Name: x, Read: String, Write: String},
	})
	if a != b {
		t.Fatalf("property order changed object identity: %v != %v", a, b)
	}
}

func TestFreshObject_WidensToPlainSibling(t *testing.T) {
	in := New()
	x := in.InternString("x")
	fresh := in.NewFreshObjectLiteral([]PropertyRecord{{Name: x, Read: String, Write: String}})
	plain := in.NewObjectLiteral([]PropertyRecord{{Name: x, Read: String, Write: String}})

	if !in.IsFreshObject(fresh) {
		t.Fatalf("NewFreshObjectLiteral did not set the Fresh bit")
	}
	if in.IsFreshObject(plain) {
		t.Fatalf("NewObjectLiteral incorrectly set the Fresh bit")
	}
	if fresh == plain {
		t.Fatalf("fresh and widened objects must be distinct TypeIDs")
	}
	if widened := in.Widen(fresh); widened != plain {
		t.Fatalf("Widen(fresh) = %v, want %v", widened, plain)
	}
}

func TestFindProperty(t *testing.T) {
	in := New()
	x := in.InternString("x")
	obj := in.NewObjectLiteral([]PropertyRecord{{Name: x, Read: String, Write: String, Optional: true}})

	got, ok := in.FindProperty(obj, x)
	if !ok {
		t.Fatalf("FindProperty: x not found")
	}
	if got.Read != String || !got.Optional {
		t.Fatalf("FindProperty returned %+v", got)
	}

	if _, ok := in.FindProperty(obj, in.InternString("missing")); ok {
		t.Fatalf("FindProperty found a nonexistent property")
	}
}

func TestFindProperty_AboveMapThreshold(t *testing.T) {
	in := New()
	props := make([]PropertyRecord, 0, propertyMapThreshold+5)
	for i := 0; i < propertyMapThreshold+5; i++ {
		name := in.InternString(string(rune('a' + i)))
		props = append(props, PropertyRecord{Name: name, Read: String, Write: String})
	}
	obj := in.NewObjectLiteral(props)

	last := in.InternString(string(rune('a' + propertyMapThreshold + 4)))
	if _, ok := in.FindProperty(obj, last); !ok {
		t.Fatalf("FindProperty via the lazily-built name index failed to find the last property")
	}
}
