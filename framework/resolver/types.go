package resolver

import "fmt"

// ── Type metadata ─────────────────────────────────────────────────────────────

// ParamKind classifies a constructor parameter: the classification decides
// whether the resolver recurses (object) or consults configuration (scalar).
type ParamKind int

const (
	// KindUnknown marks a parameter with no usable type information.
	// Required unknown parameters fail resolution; optional ones fall
	// back to their default.
	KindUnknown ParamKind = iota

	// KindScalar marks a primitive or collection parameter whose value
	// comes from configuration.
	KindScalar

	// KindObject marks a parameter whose declared type is itself a
	// registered type, resolved by recursive instantiation.
	KindObject
)

// Factory constructs an instance from resolved positional arguments.
// Variadic parameters arrive pre-expanded, one argument per element.
type Factory func(args ...any) (any, error)

// Param describes one constructor parameter. Params are resolved in
// declaration order.
type Param struct {
	Name       string
	Kind       ParamKind
	Type       string // declared type name, object parameters only
	Optional   bool
	Variadic   bool
	Default    any
	HasDefault bool
}

// TypeInfo is the bootstrap-registered descriptor for one type: whether it
// is abstract, its parent type (for configuration inheritance), its ordered
// constructor parameters, and the factory that builds it.
type TypeInfo struct {
	Name     string
	Abstract bool
	Extends  string
	Params   []Param
	New      Factory
}

// ── Registration ──────────────────────────────────────────────────────────────

// RegisterType records the metadata for a type. Registering the same name
// twice replaces the earlier descriptor.
//
// Abstract types carry no factory; they are satisfied through Bind.
// Concrete types must carry one, and every object parameter must name its
// declared type.
func (r *Resolver) RegisterType(info TypeInfo) error {
	if info.Name == "" {
		return &InvalidTypeError{Reason: "type name must not be empty"}
	}
	if !info.Abstract && info.New == nil {
		return &InvalidTypeError{Name: info.Name, Reason: "concrete type needs a factory"}
	}
	for _, p := range info.Params {
		if p.Name == "" {
			return &InvalidTypeError{Name: info.Name, Reason: "parameter name must not be empty"}
		}
		if p.Kind == KindObject && p.Type == "" {
			return &InvalidTypeError{Name: info.Name, Reason: fmt.Sprintf("object parameter %q needs a type name", p.Name)}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[info.Name] = &info
	return nil
}

// MustRegisterType is RegisterType for bootstrap code; it panics on a bad
// descriptor.
func (r *Resolver) MustRegisterType(info TypeInfo) {
	if err := r.RegisterType(info); err != nil {
		panic(err)
	}
}

// Known reports whether name has registered metadata. It is also the test
// Instantiate applies to string configuration values on object parameters:
// a known name redirects, anything else is injected verbatim.
func (r *Resolver) Known(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

func (r *Resolver) lookup(name string) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.types[name]
	return info, ok
}
