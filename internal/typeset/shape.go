package typeset

import (
	"bytes"
	"encoding/binary"
)

// propertyMapThreshold is the property-count above which an ObjectKey also
// gets a name->index side map, so large shapes pay for O(1) member lookup
// instead of a linear scan of Props.
const propertyMapThreshold = 12

// shapeKey builds a content hash for a variable-length shape: a sequence of
// uint32 fields (TypeIDs, Atoms, enum tags already narrowed to uint32) plus
// byte flags, encoded unambiguously so two structurally-equal shapes always
// produce the same string and two different shapes (almost) never collide
// within the same per-kind arena. A fixed-size shape can be its own
// comparable map key directly; a variable-length one needs this byte
// string instead.
type shapeKey struct {
	buf bytes.Buffer
}

func newShapeKey() *shapeKey {
	return &shapeKey{}
}

func (k *shapeKey) u32(v uint32) *shapeKey {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	k.buf.Write(b[:])
	return k
}

func (k *shapeKey) id(v TypeID) *shapeKey    { return k.u32(uint32(v)) }
func (k *shapeKey) atom(v Atom) *shapeKey    { return k.u32(uint32(v)) }
func (k *shapeKey) sym(v SymbolRef) *shapeKey { return k.u32(uint32(v)) }

func (k *shapeKey) b(v bool) *shapeKey {
	if v {
		k.buf.WriteByte(1)
	} else {
		k.buf.WriteByte(0)
	}
	return k
}

func (k *shapeKey) tag(v byte) *shapeKey {
	k.buf.WriteByte(v)
	return k
}

// sep marks a boundary between variable-length sub-lists so that, e.g., two
// signatures with different parameter counts can never hash-collide with a
// shifted encoding of a different split.
func (k *shapeKey) sep() *shapeKey {
	k.buf.WriteByte(0xFF)
	return k
}

func (k *shapeKey) String() string {
	return k.buf.String()
}

func ids(ts []TypeID) *shapeKey {
	k := newShapeKey()
	k.u32(uint32(len(ts)))
	for _, t := range ts {
		k.id(t)
	}
	return k
}
