package resolver

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related bootstrap registrations: type metadata,
// bindings, and configuration.
//
// Boot() is called after ALL providers have been registered, making it the
// only safe place to Instantiate other providers' types.
//
//	type MailProvider struct{ resolver.BaseProvider }
//
//	func (p *MailProvider) Register(r *resolver.Resolver) {
//	    r.MustRegisterType(resolver.TypeInfo{Name: "Mailer", Abstract: true})
//	    r.MustRegisterType(resolver.TypeInfo{Name: "SmtpMailer", ...})
//	    r.Bind("Mailer", "SmtpMailer")
//	}
type ServiceProvider interface {
	// Register records types, bindings, and configuration.
	// Do NOT Instantiate here — use Boot() for that.
	Register(r *Resolver)

	// Boot is called after all providers are registered.
	Boot(r *Resolver)
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct providing a no-op Boot().
// Embed it and only override what you need.
type BaseProvider struct{}

func (BaseProvider) Boot(_ *Resolver) {}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders.
// Registration is eager: the resolver's instantiation is itself eager and
// synchronous, so there is no deferred-provider machinery.
type ProviderRegistry struct {
	resolver   *Resolver
	providers  []ServiceProvider
	booted     bool
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to r.
func NewProviderRegistry(r *Resolver) *ProviderRegistry {
	return &ProviderRegistry{
		resolver:   r,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method. Registering
// the same provider instance twice is a no-op.
func (pr *ProviderRegistry) Register(provider ServiceProvider) {
	if pr.registered[provider] {
		return
	}
	pr.registered[provider] = true

	provider.Register(pr.resolver)
	pr.providers = append(pr.providers, provider)

	// If already booted, boot this provider immediately
	if pr.booted {
		provider.Boot(pr.resolver)
	}
}

// Boot calls Boot() on all registered providers.
// Must be called after ALL providers have been registered.
func (pr *ProviderRegistry) Boot() {
	if pr.booted {
		return
	}
	pr.booted = true
	for _, provider := range pr.providers {
		provider.Boot(pr.resolver)
	}
}

// Booted returns true if Boot() has been called.
func (pr *ProviderRegistry) Booted() bool { return pr.booted }

// Providers returns all registered providers.
func (pr *ProviderRegistry) Providers() []ServiceProvider { return pr.providers }
