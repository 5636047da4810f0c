package typeset

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/tszsolve/tszsolve/internal/atom"
)

// Interner is a hash-consed arena of TypeIDs. All mutation of its state is
// confined to the constructor methods in this package; there is no
// deletion. A fresh Interner per compilation unit is the standard
// lifecycle — share one across goroutines only through concurrent.Guarded.
type Interner struct {
	atoms *atom.Table

	types []rawType
	index map[rawType]TypeID

	// Per-kind shape arenas. Index 0 of each is a reserved zero-value
	// sentinel, following the "reserve 0 as invalid sentinel" convention.
	objects       []objectShape
	objectIndex   map[string]uint32
	callables     []callableShape
	callableIndex map[string]uint32
	tuples        []tupleShape
	tupleIndex    map[string]uint32
	memberLists   []memberList
	memberIndex   map[string]uint32
	templates     []templateShape
	templateIndex map[string]uint32
	mappeds       []mappedShape
	mappedIx      map[string]uint32
	conditionals  []conditionalShape
	conditionalIx map[string]uint32
	applications  []applicationShape
	applicationIx map[string]uint32
	typeParams    []typeParamInfo
	typeParamIx   map[typeParamKey]uint32
	lazies        []lazyInfo
	enums         []enumShape
	enumIndex     map[string]uint32
	enumMembers   []enumMemberShape

	literalIndex      map[literalKey]TypeID
	indexAccessIndex  map[indexAccessKey]TypeID
	keyOfIndex        map[TypeID]TypeID
	refIndex          map[SymbolRef]TypeID
	uniqueSymbolIndex map[SymbolRef]TypeID
	lazyIndex         map[uint32]TypeID

	propertyCacheThreshold int
}

// New creates an Interner pre-seeded with the reserved intrinsics.
func New() *Interner {
	in := &Interner{
		atoms:                  atom.New(),
		index:                  make(map[rawType]TypeID, 64),
		objectIndex:            make(map[string]uint32, 16),
		callableIndex:          make(map[string]uint32, 16),
		tupleIndex:             make(map[string]uint32, 16),
		memberIndex:            make(map[string]uint32, 16),
		templateIndex:          make(map[string]uint32, 16),
		mappedIx:               make(map[string]uint32, 16),
		conditionalIx:          make(map[string]uint32, 16),
		applicationIx:          make(map[string]uint32, 16),
		typeParamIx:            make(map[typeParamKey]uint32, 16),
		enumIndex:              make(map[string]uint32, 8),
		literalIndex:           make(map[literalKey]TypeID, 16),
		indexAccessIndex:       make(map[indexAccessKey]TypeID, 16),
		keyOfIndex:             make(map[TypeID]TypeID, 16),
		refIndex:               make(map[SymbolRef]TypeID, 16),
		uniqueSymbolIndex:      make(map[SymbolRef]TypeID, 4),
		lazyIndex:              make(map[uint32]TypeID, 16),
		propertyCacheThreshold: propertyMapThreshold,
	}
	// Reserve sentinel slot 0 in every side arena.
	in.objects = append(in.objects, objectShape{})
	in.callables = append(in.callables, callableShape{})
	in.tuples = append(in.tuples, tupleShape{})
	in.memberLists = append(in.memberLists, memberList{})
	in.templates = append(in.templates, templateShape{})
	in.mappeds = append(in.mappeds, mappedShape{})
	in.conditionals = append(in.conditionals, conditionalShape{})
	in.applications = append(in.applications, applicationShape{})
	in.typeParams = append(in.typeParams, typeParamInfo{})
	in.lazies = append(in.lazies, lazyInfo{})
	in.enums = append(in.enums, enumShape{})
	in.enumMembers = append(in.enumMembers, enumMemberShape{})

	// types[0] is NoTypeID; reserve it before seeding real intrinsics.
	in.types = append(in.types, rawType{})

	for i, kind := range intrinsicOrder {
		id := in.internRaw(rawType{Kind: KindIntrinsic, Payload: uint32(kind)})
		if want := TypeID(i + 1); id != want {
			panic(fmt.Errorf("typeset: intrinsic %s registered as %d, want %d", kind, id, want))
		}
	}
	return in
}

// InternString interns a name and returns its Atom.
func (in *Interner) InternString(s string) Atom {
	return in.atoms.Intern(s)
}

// ResolveAtom returns the text an Atom was interned from.
func (in *Interner) ResolveAtom(a Atom) (string, bool) {
	return in.atoms.Lookup(a)
}

// Lookup returns the tagged variant for id, or ok=false if id is unknown to
// this Interner.
func (in *Interner) Lookup(id TypeID) (TypeKey, bool) {
	raw, ok := in.rawLookup(id)
	if !ok {
		return nil, false
	}
	return in.materialize(id, raw), true
}

func (in *Interner) rawLookup(id TypeID) (rawType, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return rawType{}, false
	}
	return in.types[id], true
}

// intern is the single path every constructor funnels through: it applies
// the rawType as a hash-consing key and allocates a new TypeID only on a
// cache miss.
func (in *Interner) intern(raw rawType) TypeID {
	if id, ok := in.index[raw]; ok {
		return id
	}
	return in.internRaw(raw)
}

func (in *Interner) internRaw(raw rawType) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("typeset: type arena overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, raw)
	in.index[raw] = id
	return id
}

// nextSlot returns the uint32 index a value about to be appended to arena
// will occupy, panicking if the arena has outgrown uint32.
func nextSlot(arenaLen int) uint32 {
	n, err := safecast.Conv[uint32](arenaLen)
	if err != nil {
		panic(fmt.Errorf("typeset: shape arena overflow: %w", err))
	}
	return n
}
