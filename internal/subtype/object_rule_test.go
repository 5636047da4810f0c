package subtype

import (
	"testing"

	"github.com/tszsolve/tszsolve/internal/typeset"
)

func TestObject_SplitAccessorWriteIsContravariant(t *testing.T) {
	in := typeset.New()
	name := in.InternString("v")
	wide := in.NewUnion([]typeset.TypeID{typeset.String, typeset.Number})

	narrowTarget := in.NewObject([]typeset.PropertyRecord{{Name: name, Read: wide, Write: typeset.String}}, typeset.NoTypeID, typeset.NoTypeID, false)
	wideSetterSource := in.NewObject([]typeset.PropertyRecord{{Name: name, Read: typeset.String, Write: wide}}, typeset.NoTypeID, typeset.NoTypeID, false)
	if !assignable(t, in, wideSetterSource, narrowTarget, Options{}) {
		t.Errorf("a source whose setter accepts more than the target's setter should still satisfy it")
	}

	wideSetterTarget := in.NewObject([]typeset.PropertyRecord{{Name: name, Read: typeset.String, Write: wide}}, typeset.NoTypeID, typeset.NoTypeID, false)
	narrowSetterSource := in.NewObject([]typeset.PropertyRecord{{Name: name, Read: typeset.String, Write: typeset.String}}, typeset.NoTypeID, typeset.NoTypeID, false)
	if assignable(t, in, narrowSetterSource, wideSetterTarget, Options{}) {
		t.Errorf("a source whose setter accepts less than the target's setter should not satisfy it")
	}
}

func TestObject_StringIndexSatisfiesMissingTargetProperty(t *testing.T) {
	in := typeset.New()
	name := in.InternString("id")

	target := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.String, Write: typeset.String}})
	source := in.NewObject(nil, typeset.String, typeset.NoTypeID, false)

	if !assignable(t, in, source, target, Options{}) {
		t.Errorf("a string index signature whose value type matches should satisfy a missing named property")
	}
}

func TestObject_MissingOptionalPropertyIsAllowed(t *testing.T) {
	in := typeset.New()
	req, opt := in.InternString("req"), in.InternString("opt")

	target := in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: req, Read: typeset.Number, Write: typeset.Number},
		{Name: opt, Read: typeset.Number, Write: typeset.Number, Optional: true},
	})
	source := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: req, Read: typeset.Number, Write: typeset.Number}})

	if !assignable(t, in, source, target, Options{}) {
		t.Errorf("a source missing only an optional target property should still satisfy it")
	}

	missingRequired := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: opt, Read: typeset.Number, Write: typeset.Number}})
	if assignable(t, in, missingRequired, target, Options{}) {
		t.Errorf("a source missing a required target property should be rejected")
	}
}

func TestObject_OptionalSourcePropertyRejectsRequiredTarget(t *testing.T) {
	in := typeset.New()
	name := in.InternString("x")

	requiredTarget := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number}})
	optionalSource := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number, Optional: true}})

	if assignable(t, in, optionalSource, requiredTarget, Options{}) {
		t.Errorf("a property optional in the source but required in the target should be rejected")
	}

	optionalTarget := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number, Optional: true}})
	if !assignable(t, in, optionalSource, optionalTarget, Options{}) {
		t.Errorf("a property optional on both sides should still be accepted")
	}
}

func TestObject_ReadonlySourcePropertyRejectsMutableTarget(t *testing.T) {
	in := typeset.New()
	name := in.InternString("x")

	mutableTarget := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number}})
	readonlySource := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number, Readonly: true}})

	if assignable(t, in, readonlySource, mutableTarget, Options{}) {
		t.Errorf("a readonly source property should not satisfy a mutable target property")
	}

	readonlyTarget := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number, Readonly: true}})
	if !assignable(t, in, readonlySource, readonlyTarget, Options{}) {
		t.Errorf("a readonly source property should satisfy a readonly target property")
	}
	mutableSource := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: typeset.Number, Write: typeset.Number}})
	if !assignable(t, in, mutableSource, readonlyTarget, Options{}) {
		t.Errorf("a mutable source property should satisfy a readonly target property")
	}
}

func TestObject_MethodShorthandIsBivariant(t *testing.T) {
	in := typeset.New()
	name := in.InternString("m")

	sourceParam := in.NewCallable([]typeset.Signature{{Params: []typeset.Param{{Type: typeset.String}}, Return: typeset.Void}}, nil, nil)
	targetParam := in.NewCallable([]typeset.Signature{{Params: []typeset.Param{{Type: typeset.Unknown}}, Return: typeset.Void}}, nil, nil)

	source := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: sourceParam, Write: sourceParam, Method: true}})
	target := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: targetParam, Write: targetParam, Method: true}})

	if !assignable(t, in, source, target, Options{StrictFunctionTypes: true}) {
		t.Errorf("a method-shorthand property should compare its parameters bivariantly even under StrictFunctionTypes")
	}

	fieldSource := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: sourceParam, Write: sourceParam}})
	fieldTarget := in.NewObjectLiteral([]typeset.PropertyRecord{{Name: name, Read: targetParam, Write: targetParam}})
	if assignable(t, in, fieldSource, fieldTarget, Options{StrictFunctionTypes: true}) {
		t.Errorf("the same function shapes stored as a plain field should stay contravariant under StrictFunctionTypes")
	}
}
