// Package config provides the ordered key/value Store that supplies
// constructor configuration to the resolver, plus environment helpers for
// application bootstrap.
//
// # Store
//
// A Store maps non-empty string keys to arbitrary values and iterates in
// insertion order:
//
//	s := config.NewStore().
//	    With("host", "smtp.example.com").
//	    With("port", 587)
//
//	s.Has("host")        // true
//	s.GetInt("port")     // 587
//	s.Each(func(k string, v any) bool { fmt.Println(k, v); return true })
//
// Stores are registered per type with Resolver.Configure; the resolver
// merges a type's ancestor chain's stores, nearest-to-type keys winning.
//
// # YAML
//
// FromYAML decodes a YAML mapping into a Store without losing key order:
//
//	store, err := config.FromYAML(data)
//
// # Environment
//
// LoadEnv, Env, EnvInt, and EnvBool wrap godotenv and os.Getenv for
// bootstrap code:
//
//	config.LoadEnv()                     // reads .env if present
//	port := config.Env("APP_PORT", "8000")
package config
