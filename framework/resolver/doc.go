// Package resolver provides a runtime object-graph builder: given a type
// name, it recursively resolves and constructs the type's full dependency
// tree, resolving object-typed constructor parameters to other managed
// instances and scalar parameters to configured values.
//
// # Lifecycle
//
//  1. Create: r := resolver.New()
//  2. Bootstrap: RegisterType / Bind / Configure (directly or via providers)
//  3. Resolve: r.Instantiate("Server") — eager, synchronous, cached
//
// # Type metadata
//
// The resolver never reflects over Go types. Each managed type is described
// at bootstrap by a TypeInfo — abstract flag, parent type, ordered
// constructor parameters, and a factory:
//
//	r.MustRegisterType(resolver.TypeInfo{
//	    Name: "SmtpMailer",
//	    Params: []resolver.Param{
//	        {Name: "host", Kind: resolver.KindScalar},
//	        {Name: "port", Kind: resolver.KindScalar, Default: 587, HasDefault: true},
//	    },
//	    New: func(args ...any) (any, error) {
//	        return NewSmtpMailer(cast.ToString(args[0]), cast.ToInt(args[1])), nil
//	    },
//	})
//
// # Bindings
//
// Abstract types resolve through a binding to a concrete type; the
// resulting instance is cached under both names:
//
//	r.MustRegisterType(resolver.TypeInfo{Name: "Mailer", Abstract: true})
//	r.Bind("Mailer", "SmtpMailer")
//	m, err := resolver.Resolve[Mailer](r, "Mailer")
//
// # Configuration
//
// Scalar parameters are looked up by name in the merged configuration of
// the type's ancestor chain — a subtype inherits its ancestors' entries
// and its own entries win:
//
//	r.Configure("SmtpMailer", config.NewStore().With("host", "smtp.example.com"))
//
// A configuration entry for an object parameter either injects a literal
// value or, when it is a registered type name, redirects the parameter to
// that type instead of its declared one. Sequences configured for variadic
// parameters expand into one argument per element.
//
// # Errors
//
// Failures are typed — TypeNotFoundError, NoImplementationError,
// MissingConfigurationError, UnresolvableParameterError — and propagate to
// the Instantiate caller; nothing is cached on failure. The single
// internally-recovered case is NoImplementationError on an optional object
// parameter, which falls back to the parameter's default.
//
// The resolver does not detect dependency cycles, does not manage
// teardown, and supports one binding per abstract type.
package resolver
