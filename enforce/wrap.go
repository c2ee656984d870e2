package enforce

import (
	"context"
	"fmt"
	"reflect"

	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Func is a Go function wrapped with argument and return validation.
type Func struct {
	v   *Validator
	sig *Signature
	fn  reflect.Value

	hasResult bool
	hasError  bool
}

// Wrap binds fn to sig. fn must be a non-variadic function with one
// parameter per declared Param and may return (), (T), (error) or (T, error).
func (v *Validator) Wrap(sig *Signature, fn any) (*Func, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("cannot wrap %s: %T is not a function", sig.Name, fn)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("cannot wrap %s: variadic functions are not supported", sig.Name)
	}
	if ft.NumIn() != len(sig.Params) {
		return nil, fmt.Errorf("cannot wrap %s: function takes %d parameters, signature declares %d", sig.Name, ft.NumIn(), len(sig.Params))
	}

	f := &Func{v: v, sig: sig, fn: fv}
	switch ft.NumOut() {
	case 0:
	case 1:
		if ft.Out(0) == errorType {
			f.hasError = true
		} else {
			f.hasResult = true
		}
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("cannot wrap %s: second result must be error, got %s", sig.Name, ft.Out(1))
		}
		f.hasResult, f.hasError = true, true
	default:
		return nil, fmt.Errorf("cannot wrap %s: function returns %d results", sig.Name, ft.NumOut())
	}
	return f, nil
}

// Signature returns the signature the function was wrapped with.
func (f *Func) Signature() *Signature {
	return f.sig
}

// Call invokes the function with positional arguments.
func (f *Func) Call(ctx context.Context, args ...any) (any, error) {
	return f.CallKw(ctx, args, nil)
}

// CallKw invokes the function with positional and keyword arguments. The
// arguments are validated before the call and the result after it; an error
// returned by the function itself is passed through unvalidated.
func (f *Func) CallKw(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	ctx, logger := ctxlog.With(ctx, "func", f.sig.Name)

	binding, err := f.sig.Bind(args, kwargs)
	if err != nil {
		return nil, err
	}

	declared := f.sig.Declared()
	for _, p := range f.sig.Params {
		a, ok := declared[p.Name]
		if !ok {
			continue
		}
		if err := f.v.Check(ctx, p.Name, binding[p.Name], a); err != nil {
			return nil, err
		}
	}

	in := make([]reflect.Value, len(f.sig.Params))
	ft := f.fn.Type()
	for i, p := range f.sig.Params {
		rv, err := argValue(binding[p.Name], ft.In(i))
		if err != nil {
			return nil, fmt.Errorf("%s: argument '%s': %w", f.sig.Name, p.Name, err)
		}
		in[i] = rv
	}

	logger.Debug("Calling wrapped function.")
	out := f.fn.Call(in)

	if f.hasError {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}

	var produced any
	if f.hasResult {
		produced = out[0].Interface()
	}
	if err := f.v.ValidateReturn(ctx, declared, produced); err != nil {
		return nil, err
	}
	return produced, nil
}

// argValue converts a bound value into a reflect.Value usable as parameter t.
func argValue(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", t)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("cannot use %T as %s", value, t)
	}
	return rv, nil
}
