package enforce

import (
	"fmt"
)

// Param is one declared parameter of a Signature.
type Param struct {
	Name string
	Type Annotation
}

// Signature is the explicit declaration of a callable: its ordered
// parameters and its return annotation. A nil Type or Return means the
// position is not annotated.
type Signature struct {
	Name   string
	Params []Param
	Return Annotation
}

// Declared returns the annotations of the signature keyed by parameter name,
// plus ReturnKey when the return is annotated.
func (s *Signature) Declared() Declared {
	declared := make(Declared, len(s.Params)+1)
	for _, p := range s.Params {
		if p.Type != nil {
			declared[p.Name] = p.Type
		}
	}
	if s.Return != nil {
		declared[ReturnKey] = s.Return
	}
	return declared
}

// Bind maps positional arguments onto parameter names, then applies keyword
// arguments. Every parameter must end up bound exactly once.
func (s *Signature) Bind(args []any, kwargs map[string]any) (Binding, error) {
	if len(args) > len(s.Params) {
		return nil, fmt.Errorf("%s takes %d arguments but %d were given", s.Name, len(s.Params), len(args))
	}

	binding := make(Binding, len(s.Params))
	for i, arg := range args {
		binding[s.Params[i].Name] = arg
	}

	for name, value := range kwargs {
		if !s.hasParam(name) {
			return nil, fmt.Errorf("%s got an unexpected keyword argument '%s'", s.Name, name)
		}
		if _, dup := binding[name]; dup {
			return nil, fmt.Errorf("%s got multiple values for argument '%s'", s.Name, name)
		}
		binding[name] = value
	}

	for _, p := range s.Params {
		if _, ok := binding[p.Name]; !ok {
			return nil, fmt.Errorf("%s missing required argument '%s'", s.Name, p.Name)
		}
	}
	return binding, nil
}

func (s *Signature) hasParam(name string) bool {
	for _, p := range s.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}
