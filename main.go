package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cast"

	"github.com/km-arc/go-forge/app"
	"github.com/km-arc/go-forge/framework/config"
	"github.com/km-arc/go-forge/framework/resolver"
)

// Greeter is a small demo component resolved through an abstract binding.
type Greeter interface {
	Greet(name string) string
}

// PlainGreeter greets with a configurable greeting word.
type PlainGreeter struct {
	Greeting string
}

func (g *PlainGreeter) Greet(name string) string {
	return fmt.Sprintf("%s, %s!", g.Greeting, name)
}

func main() {
	application := app.New() // loads .env automatically

	// ── Demo component: abstract type bound to a configured concrete ─────────

	application.MustRegisterType(resolver.TypeInfo{Name: "Greeter", Abstract: true})
	application.MustRegisterType(resolver.TypeInfo{
		Name: "PlainGreeter",
		Params: []resolver.Param{
			{Name: "greeting", Kind: resolver.KindScalar, Default: "Hello", HasDefault: true},
		},
		New: func(args ...any) (any, error) {
			return &PlainGreeter{Greeting: cast.ToString(args[0])}, nil
		},
	})
	application.Bind("Greeter", "PlainGreeter")
	application.Configure("PlainGreeter", config.NewStore().
		With("greeting", config.Env("APP_GREETING", "Hello")))

	// ── Routes ────────────────────────────────────────────────────────────────

	r := application.Server().Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "Welcome to go-forge!"})
	})

	r.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
		greeter, err := resolver.Resolve[Greeter](application.Resolver, "Greeter")
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": greeter.Greet(app.Param(req, "name")),
		})
	})

	application.Run()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
