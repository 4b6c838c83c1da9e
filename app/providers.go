package app

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/km-arc/go-forge/framework/config"
	"github.com/km-arc/go-forge/framework/resolver"
)

// bootLogger is the logger the resolver itself logs with, before any
// component exists. Level comes straight from the environment.
func bootLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Env("APP_LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// ── CoreProvider ──────────────────────────────────────────────────────────────

// CoreProvider registers the components every application needs — the
// logger, the router, and the HTTP server — as resolver-managed types,
// and seeds their configuration from the environment.
//
// Registered types:
//   - "Logger" → zerolog.Logger   (scalar param: level)
//   - "Router" → *app.Router
//   - "Server" → *app.Server      (params: addr scalar, router + logger objects)
type CoreProvider struct {
	resolver.BaseProvider
}

func (p *CoreProvider) Register(r *resolver.Resolver) {
	r.MustRegisterType(resolver.TypeInfo{
		Name: "Logger",
		Params: []resolver.Param{
			{Name: "level", Kind: resolver.KindScalar, Default: "info", HasDefault: true},
		},
		New: func(args ...any) (any, error) {
			level, err := zerolog.ParseLevel(cast.ToString(args[0]))
			if err != nil {
				return nil, err
			}
			return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger(), nil
		},
	})

	r.MustRegisterType(resolver.TypeInfo{
		Name: "Router",
		New: func(args ...any) (any, error) {
			return NewRouter(), nil
		},
	})

	r.MustRegisterType(resolver.TypeInfo{
		Name: "Server",
		Params: []resolver.Param{
			{Name: "addr", Kind: resolver.KindScalar, Default: ":8000", HasDefault: true},
			{Name: "router", Kind: resolver.KindObject, Type: "Router"},
			{Name: "logger", Kind: resolver.KindObject, Type: "Logger"},
		},
		New: func(args ...any) (any, error) {
			return NewServer(
				cast.ToString(args[0]),
				args[1].(*Router),
				args[2].(zerolog.Logger),
			), nil
		},
	})

	r.Configure("Logger", config.NewStore().
		With("level", config.Env("APP_LOG_LEVEL", "info")))
	r.Configure("Server", config.NewStore().
		With("addr", ":"+config.Env("APP_PORT", "8000")))
}
