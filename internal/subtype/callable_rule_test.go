package subtype

import (
	"testing"

	"github.com/tszsolve/tszsolve/internal/typeset"
)

func pointObjects(in *typeset.Interner) (point, point3D typeset.TypeID) {
	x, y, z := in.InternString("x"), in.InternString("y"), in.InternString("z")
	point = in.NewObjectLiteral([]typeset.PropertyRecord{{Name: x, Read: typeset.Number, Write: typeset.Number}})
	point3D = in.NewObjectLiteral([]typeset.PropertyRecord{
		{Name: x, Read: typeset.Number, Write: typeset.Number},
		{Name: y, Read: typeset.Number, Write: typeset.Number},
		{Name: z, Read: typeset.Number, Write: typeset.Number},
	})
	return
}

func TestCallable_ContravariantParametersUnderStrict(t *testing.T) {
	in := typeset.New()
	point, point3D := pointObjects(in)

	acceptsWide := in.NewFunction(typeset.Signature{Params: []typeset.Param{{Type: point}}, Return: typeset.Number})
	acceptsNarrow := in.NewFunction(typeset.Signature{Params: []typeset.Param{{Type: point3D}}, Return: typeset.Number})

	opts := Options{StrictFunctionTypes: true}
	if !assignable(t, in, acceptsWide, acceptsNarrow, opts) {
		t.Errorf("a function accepting the wider parameter type should satisfy a target requiring the narrower one")
	}
	if assignable(t, in, acceptsNarrow, acceptsWide, opts) {
		t.Errorf("a function accepting only the narrower parameter type should not satisfy a target requiring the wider one")
	}
}

func TestCallable_BivariantWithoutStrictFunctionTypes(t *testing.T) {
	in := typeset.New()
	point, point3D := pointObjects(in)

	acceptsWide := in.NewFunction(typeset.Signature{Params: []typeset.Param{{Type: point}}, Return: typeset.Number})
	acceptsNarrow := in.NewFunction(typeset.Signature{Params: []typeset.Param{{Type: point3D}}, Return: typeset.Number})

	if !assignable(t, in, acceptsNarrow, acceptsWide, Options{StrictFunctionTypes: false}) {
		t.Errorf("parameters should be bivariant when strict_function_types is off")
	}
}

func TestCallable_VoidReturnAbsorbsAnyReturn(t *testing.T) {
	in := typeset.New()
	returnsNumber := in.NewFunction(typeset.Signature{Return: typeset.Number})
	returnsVoid := in.NewFunction(typeset.Signature{Return: typeset.Void})

	if !assignable(t, in, returnsNumber, returnsVoid, Options{}) {
		t.Errorf("a function returning number should satisfy a target returning void")
	}
	if assignable(t, in, returnsVoid, returnsNumber, Options{}) {
		t.Errorf("a function returning void should not satisfy a target requiring a number")
	}
}

func TestCallable_CovariantReturn(t *testing.T) {
	in := typeset.New()
	point, point3D := pointObjects(in)
	returnsNarrow := in.NewFunction(typeset.Signature{Return: point3D})
	returnsWide := in.NewFunction(typeset.Signature{Return: point})

	if !assignable(t, in, returnsNarrow, returnsWide, Options{}) {
		t.Errorf("a function returning the narrower type should satisfy a target returning the wider type")
	}
	if assignable(t, in, returnsWide, returnsNarrow, Options{}) {
		t.Errorf("a function returning the wider type should not satisfy a target requiring the narrower one")
	}
}

func TestCallable_AnyArrayRestParameterIsBivariant(t *testing.T) {
	in := typeset.New()
	anyArray := in.NewObject(nil, typeset.NoTypeID, typeset.Any, false)
	stringArray := in.NewObject(nil, typeset.NoTypeID, typeset.String, false)

	takesAnyRest := in.NewFunction(typeset.Signature{Params: []typeset.Param{{Type: anyArray, Rest: true}}, Return: typeset.Void})
	takesStringRest := in.NewFunction(typeset.Signature{Params: []typeset.Param{{Type: stringArray, Rest: true}}, Return: typeset.Void})

	if !assignable(t, in, takesStringRest, takesAnyRest, Options{StrictFunctionTypes: true}) {
		t.Errorf("an any[] rest parameter on either side should skip the normal contravariance check")
	}
	if !assignable(t, in, takesAnyRest, takesStringRest, Options{StrictFunctionTypes: true}) {
		t.Errorf("an any[] rest parameter on either side should skip the normal contravariance check")
	}
}
