package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-forge/framework/config"
)

// ── Resolver ──────────────────────────────────────────────────────────────────

// Resolver builds object graphs from registered type metadata. Given a type
// name it recursively resolves the type's constructor parameters — object
// parameters by recursive instantiation, scalar parameters from the merged
// configuration of the type's ancestor chain — constructs the type, and
// caches the result for the resolver's lifetime.
//
// All registries are expected to be populated during bootstrap
// (RegisterType / Bind / Configure) before the first Instantiate call;
// bindings added after a dependent type has been resolved and cached are
// not picked up.
type Resolver struct {
	mu sync.RWMutex

	// type name → metadata (the introspection + construction table)
	types map[string]*TypeInfo

	// abstract type name → concrete type name
	bindings map[string]string

	// type name → configuration store
	configs map[string]*config.Store

	// type name (concrete, plus abstract alias) → cached instance
	instances map[string]any

	log zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger attaches a logger; resolution events are emitted at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// New creates an empty Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		types:     make(map[string]*TypeInfo),
		bindings:  make(map[string]string),
		configs:   make(map[string]*config.Store),
		instances: make(map[string]any),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind maps an abstract type name to the concrete type that satisfies it.
// Last write wins. No check that concrete actually implements abstract —
// a mismatch surfaces later as a construction or assertion error.
func (r *Resolver) Bind(abstract, concrete string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[abstract] = concrete
}

// Configure replaces the configuration store for typ wholesale; it does
// not merge with a store from an earlier call for the same type.
func (r *Resolver) Configure(typ string, store *config.Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[typ] = store
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Instantiate resolves name to a single shared instance, constructing it
// and its full dependency tree on first request.
//
// Abstract names resolve through their binding; the instance is then
// cached under both the abstract and the concrete name. Nothing is cached
// on failure. Circular dependency graphs are not detected and recurse
// until stack exhaustion.
func (r *Resolver) Instantiate(name string) (any, error) {
	if inst, ok := r.cached(name); ok {
		r.log.Debug().Str("type", name).Msg("instance cache hit")
		return inst, nil
	}

	info, ok := r.lookup(name)
	if !ok {
		return nil, &TypeNotFoundError{Type: name}
	}

	alias := ""
	if info.Abstract {
		concrete, bound := r.binding(name)
		if !bound {
			return nil, &NoImplementationError{Abstract: name}
		}
		alias = name
		info, ok = r.lookup(concrete)
		if !ok {
			return nil, &TypeNotFoundError{Type: concrete}
		}
		r.log.Debug().Str("abstract", name).Str("concrete", concrete).Msg("binding redirect")

		// The concrete side may already exist from a direct request;
		// reuse it so the constructor never runs twice.
		if inst, hit := r.cached(info.Name); hit {
			return r.remember(info.Name, alias, inst), nil
		}
	}
	if info.New == nil {
		return nil, &InvalidTypeError{Name: info.Name, Reason: "bound concrete type is not constructible"}
	}

	var args []any
	if len(info.Params) > 0 {
		cfg := r.MergedConfiguration(info.Name)
		args = make([]any, 0, len(info.Params))
		for _, p := range info.Params {
			resolved, err := r.resolveParam(info, p, cfg)
			if err != nil {
				return nil, err
			}
			args = append(args, resolved...)
		}
	}

	inst, err := info.New(args...)
	if err != nil {
		return nil, fmt.Errorf("resolver: construct %s: %w", info.Name, err)
	}
	r.log.Debug().Str("type", info.Name).Int("args", len(args)).Msg("constructed")
	return r.remember(info.Name, alias, inst), nil
}

// resolveParam produces the positional arguments for one parameter —
// usually one value, several for an expanded variadic.
func (r *Resolver) resolveParam(owner *TypeInfo, p Param, cfg *config.Store) ([]any, error) {
	switch p.Kind {
	case KindObject:
		if v, ok := cfg.Lookup(p.Name); ok {
			// A registered type name redirects this parameter to that
			// type; any other value is injected verbatim.
			if redirect, isString := v.(string); isString && r.Known(redirect) {
				inst, err := r.Instantiate(redirect)
				if err != nil {
					return nil, err
				}
				return []any{inst}, nil
			}
			return expand(p, v), nil
		}

		inst, err := r.Instantiate(p.Type)
		if err != nil {
			var unbound *NoImplementationError
			if p.Optional && errors.As(err, &unbound) {
				return []any{fallback(p)}, nil
			}
			return nil, err
		}
		return []any{inst}, nil

	case KindScalar:
		if v, ok := cfg.Lookup(p.Name); ok {
			return expand(p, v), nil
		}
		if p.HasDefault {
			return []any{p.Default}, nil
		}
		if p.Optional {
			return []any{nil}, nil
		}
		return nil, &MissingConfigurationError{Type: owner.Name, Param: p.Name}

	default:
		if p.Optional {
			return []any{fallback(p)}, nil
		}
		return nil, &UnresolvableParameterError{Type: owner.Name, Param: p.Name}
	}
}

// fallback is the value an optional parameter takes when resolution
// yields nothing.
func fallback(p Param) any {
	if p.HasDefault {
		return p.Default
	}
	return nil
}

// expand flattens a configured sequence into positional arguments for a
// variadic parameter; everything else passes through as a single argument.
func expand(p Param, v any) []any {
	if !p.Variadic {
		return []any{v}
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ── Configuration merge ───────────────────────────────────────────────────────

// MergedConfiguration folds the configuration stores of name's ancestor
// chain into a fresh store, most distant ancestor first and name itself
// last, so keys configured nearer to name win. Recomputed on every call;
// the configuration registry is effectively read-only after bootstrap.
func (r *Resolver) MergedConfiguration(name string) *config.Store {
	var chain []string
	for cur := name; cur != ""; {
		chain = append(chain, cur)
		info, ok := r.lookup(cur)
		if !ok {
			break
		}
		cur = info.Extends
	}

	merged := config.NewStore()
	for i := len(chain) - 1; i >= 0; i-- {
		if store, ok := r.configFor(chain[i]); ok {
			merged.Merge(store)
		}
	}
	return merged
}

// ── Instance cache ────────────────────────────────────────────────────────────

func (r *Resolver) cached(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// remember inserts inst under the concrete name and, if the request came
// through a binding, the abstract alias. Two goroutines may race to
// construct the same uncached type: the first write wins and the loser's
// instance is discarded in favor of the winner's.
func (r *Resolver) remember(concrete, alias string, inst any) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if winner, ok := r.instances[concrete]; ok {
		inst = winner
	} else {
		r.instances[concrete] = inst
	}
	if alias != "" {
		r.instances[alias] = inst
	}
	return inst
}

func (r *Resolver) binding(abstract string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	concrete, ok := r.bindings[abstract]
	return concrete, ok
}

func (r *Resolver) configFor(name string) (*config.Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.configs[name]
	return store, ok
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve instantiates name and type-asserts the result.
//
//	mailer, err := resolver.Resolve[Mailer](r, "Mailer")
func Resolve[T any](r *Resolver, name string) (T, error) {
	var zero T
	inst, err := r.Instantiate(name)
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("resolver: %q resolved to %T, want %T", name, inst, zero)
	}
	return typed, nil
}
