package annotation

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/specialistvlad/enforcetyping/internal/verdict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	Name string
	Age  int
}

func newTestRegistry() *registry.Registry {
	r := registry.New()
	r.RegisterPackage("pkg.module", registry.ModuleFunc(func(r *registry.Registry) {
		r.RegisterType("pkg.module.User", reflect.TypeOf(user{}))
	}))
	return r
}

func TestClassify_Textual(t *testing.T) {
	r := newTestRegistry()
	c := &Classifier{Registry: r}
	ctx := context.Background()

	userType, err := r.Resolve(ctx, "pkg.module.User")
	require.NoError(t, err)

	testCases := []struct {
		name string
		text string
		want Annotation
	}{
		{name: "builtin", text: "int", want: Of(r.Builtin("int"))},
		{name: "plain dict", text: "dict", want: Of(r.Builtin("dict"))},
		{name: "qualified class", text: "pkg.module.User", want: Of(userType)},
		{name: "lowercase dict", text: "dict[str, int]", want: Dict(Of(r.Builtin("str")), Of(r.Builtin("int")))},
		{name: "capitalized list", text: "List[int]", want: List(Of(r.Builtin("int")))},
		{name: "namespaced tuple", text: "typing.Tuple[int, int]", want: Tuple(Of(r.Builtin("int")), Of(r.Builtin("int")))},
		{name: "class sub-type", text: "list[pkg.module.User]", want: List(Of(userType))},
		{name: "no spaces", text: "Dict[str,pkg.module.User]", want: Dict(Of(r.Builtin("str")), Of(userType))},
		{name: "nested", text: "list[list[int]]", want: List(List(Of(r.Builtin("int"))))},
		{name: "nested dict in tuple", text: "tuple[dict[str, int], str]", want: Tuple(Dict(Of(r.Builtin("str")), Of(r.Builtin("int"))), Of(r.Builtin("str")))},
		{name: "empty tuple", text: "tuple[]", want: Tuple()},
		{name: "surrounding whitespace", text: "  str ", want: Of(r.Builtin("str"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := c.Classify(ctx, "arg", Text(tc.text))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_SkipsUninterpretableAnnotations(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	c := &Classifier{Registry: newTestRegistry()}

	for _, text := range []string{
		"List",
		"typing.Dict",
		"Unknown",
		"list[int",
		"Optional[int]",
		"pkg.module.Missing",
		"list[int,]",
	} {
		t.Run(text, func(t *testing.T) {
			got, ok, err := c.Classify(ctx, "arg", Text(text))
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}

	assert.Contains(t, logs.String(), "skipping validation")
}

func TestClassify_StrictRejectsUninterpretableAnnotations(t *testing.T) {
	c := &Classifier{Registry: newTestRegistry(), Strict: true}

	for _, text := range []string{"List", "Unknown", "list[int", "Optional[int]"} {
		t.Run(text, func(t *testing.T) {
			_, ok, err := c.Classify(context.Background(), "arg", Text(text))
			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, verdict.ErrTypeMismatch)
		})
	}
}

func TestClassify_UnresolvableSubTypeIsHardError(t *testing.T) {
	c := &Classifier{Registry: newTestRegistry()}

	for _, text := range []string{
		"list[Nope]",
		"dict[str, pkg.module.Missing]",
		"tuple[int, List]",
	} {
		t.Run(text, func(t *testing.T) {
			_, _, err := c.Classify(context.Background(), "items", Text(text))
			require.Error(t, err)

			var typingErr *verdict.EnforcedTypingError
			require.True(t, errors.As(err, &typingErr))
			assert.Contains(t, typingErr.Error(), "'items'")
		})
	}

	_, _, err := c.Classify(context.Background(), "items", Text("list[Nope]"))
	var resErr *registry.TypeResolutionError
	assert.True(t, errors.As(err, &resErr), "resolution failure must stay reachable")
}

func TestClassify_Live(t *testing.T) {
	r := newTestRegistry()
	c := &Classifier{Registry: r}
	ctx := context.Background()

	got, ok, err := c.Classify(ctx, "arg", List(Text("int")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, List(Of(r.Builtin("int"))), got)

	got, ok, err = c.Classify(ctx, "arg", Of(r.Builtin("str")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Of(r.Builtin("str")), got)

	_, ok, err = c.Classify(ctx, "arg", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = c.Classify(ctx, "arg", Plain{})
	assert.Error(t, err)

	_, _, err = c.Classify(ctx, "arg", List(nil))
	assert.Error(t, err)

	_, _, err = c.Classify(ctx, "arg", Parameterized{Kind: registry.KindConcrete})
	assert.Error(t, err)
}

func TestAnnotation_String(t *testing.T) {
	r := registry.New()
	assert.Equal(t, "dict[str, int]", Dict(Of(r.Builtin("str")), Of(r.Builtin("int"))).String())
	assert.Equal(t, "tuple[int, list[str]]", Tuple(Text("int"), List(Text("str"))).String())
	assert.Equal(t, "int", Of(r.Builtin("int")).String())
}

func TestSplitArgs(t *testing.T) {
	args, err := splitArgs(" str , list[dict[str, int]] ")
	require.NoError(t, err)
	assert.Equal(t, []string{"str", "list[dict[str, int]]"}, args)

	_, err = splitArgs("list[int")
	assert.ErrorIs(t, err, errUnbalanced)

	_, err = splitArgs("int]")
	assert.ErrorIs(t, err, errUnbalanced)
}
