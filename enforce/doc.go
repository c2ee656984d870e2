// Package enforce validates, at call time, that the arguments passed to a
// callable and the value it returns conform to its declared annotations.
//
// The core accepts a pre-built Binding (parameter name to value) and the
// Declared annotations (parameter name to annotation, plus ReturnKey for
// the result). Annotations may be live types, parameterized containers or
// text such as "dict[str, int]" and "app.models.User"; text is resolved
// through a Registry populated at startup.
//
//	reg := enforce.NewRegistry()
//	reg.RegisterType("app.models.User", reflect.TypeOf(User{}))
//	v := enforce.New(enforce.Config{Registry: reg})
//
//	err := v.ValidateArguments(ctx,
//		enforce.Binding{"user": u, "tags": []any{"a"}},
//		enforce.Declared{"user": enforce.Text("app.models.User"), "tags": enforce.Text("list[str]")},
//	)
//
// Every mismatch is reported as an *EnforcedTypingError, and only the first
// one is reported.
package enforce
