package app

import (
	"log"
	"os"

	"github.com/km-arc/go-forge/framework/config"
	"github.com/km-arc/go-forge/framework/resolver"
)

// Application is the top-level bootstrap object. It embeds the Resolver so
// user code can call app.RegisterType(), app.Bind(), app.Configure(), and
// app.Instantiate() directly.
type Application struct {
	*resolver.Resolver
	Providers *resolver.ProviderRegistry
}

// New creates and bootstraps the application: loads .env, creates the
// resolver, and registers the core provider (logger, router, server).
//
//	application := app.New()
//	application.Server().Router().Get("/", handler)
//	application.Run()
func New(envFiles ...string) *Application {
	config.LoadEnv(envFiles...)

	r := resolver.New(resolver.WithLogger(bootLogger()))
	app := &Application{
		Resolver:  r,
		Providers: resolver.NewProviderRegistry(r),
	}

	app.Providers.Register(&CoreProvider{})
	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider resolver.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// LoadDefinitions applies a YAML definitions file (bindings + per-type
// configuration) to the resolver. Call before the first Instantiate.
func (a *Application) LoadDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return resolver.LoadDefinitions(a.Resolver, data)
}

// Server resolves the HTTP server component and its dependency tree.
func (a *Application) Server() *Server {
	srv, err := resolver.Resolve[*Server](a.Resolver, "Server")
	if err != nil {
		log.Fatalf("resolve server: %v", err)
	}
	return srv
}

// Run boots the application (if needed) and starts the HTTP server.
func (a *Application) Run() {
	if !a.Providers.Booted() {
		a.Boot()
	}
	if err := a.Server().ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return config.Env("APP_ENV", "local") }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
