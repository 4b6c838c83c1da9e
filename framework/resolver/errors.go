package resolver

import "fmt"

// TypeNotFoundError reports a type name with no registered metadata —
// either requested directly, named as a constructor parameter's type, or
// the concrete side of a binding.
type TypeNotFoundError struct {
	Type string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("resolver: unknown type %q", e.Type)
}

// NoImplementationError reports an abstract type requested with no
// binding to a concrete type. It is the one error the resolver recovers
// from internally: an optional object parameter whose type is unbound
// falls back to its default instead of failing.
type NoImplementationError struct {
	Abstract string
}

func (e *NoImplementationError) Error() string {
	return fmt.Sprintf("resolver: no implementation bound for abstract type %q", e.Abstract)
}

// MissingConfigurationError reports a required scalar parameter with no
// configuration entry and no declared default.
type MissingConfigurationError struct {
	Type  string
	Param string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("resolver: %s: no configuration value for required parameter %q", e.Type, e.Param)
}

// UnresolvableParameterError reports a required parameter that carries no
// usable type information and so cannot be classified as object or scalar.
type UnresolvableParameterError struct {
	Type  string
	Param string
}

func (e *UnresolvableParameterError) Error() string {
	return fmt.Sprintf("resolver: %s: parameter %q has no usable type information", e.Type, e.Param)
}

// InvalidTypeError reports a rejected RegisterType call, or a binding
// whose concrete side turned out not to be constructible.
type InvalidTypeError struct {
	Name   string
	Reason string
}

func (e *InvalidTypeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("resolver: invalid type: %s", e.Reason)
	}
	return fmt.Sprintf("resolver: invalid type %q: %s", e.Name, e.Reason)
}
