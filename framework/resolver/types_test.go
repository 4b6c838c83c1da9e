package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-forge/framework/config"
	"github.com/km-arc/go-forge/framework/resolver"
)

// ── RegisterType validation ───────────────────────────────────────────────────

func TestRegisterType_EmptyNameRejected(t *testing.T) {
	r := resolver.New()

	err := r.RegisterType(resolver.TypeInfo{
		New: func(args ...any) (any, error) { return struct{}{}, nil },
	})

	var invalid *resolver.InvalidTypeError
	require.ErrorAs(t, err, &invalid)
}

func TestRegisterType_ConcreteNeedsFactory(t *testing.T) {
	r := resolver.New()

	err := r.RegisterType(resolver.TypeInfo{Name: "Thing"})

	var invalid *resolver.InvalidTypeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Thing", invalid.Name)
}

func TestRegisterType_AbstractNeedsNoFactory(t *testing.T) {
	r := resolver.New()

	err := r.RegisterType(resolver.TypeInfo{Name: "Thing", Abstract: true})
	require.NoError(t, err)
	assert.True(t, r.Known("Thing"))
}

func TestRegisterType_ObjectParamNeedsTypeName(t *testing.T) {
	r := resolver.New()

	err := r.RegisterType(resolver.TypeInfo{
		Name: "Thing",
		Params: []resolver.Param{
			{Name: "dep", Kind: resolver.KindObject},
		},
		New: func(args ...any) (any, error) { return struct{}{}, nil },
	})

	var invalid *resolver.InvalidTypeError
	require.ErrorAs(t, err, &invalid)
}

func TestRegisterType_ParamNeedsName(t *testing.T) {
	r := resolver.New()

	err := r.RegisterType(resolver.TypeInfo{
		Name: "Thing",
		Params: []resolver.Param{
			{Kind: resolver.KindScalar},
		},
		New: func(args ...any) (any, error) { return struct{}{}, nil },
	})

	var invalid *resolver.InvalidTypeError
	require.ErrorAs(t, err, &invalid)
}

func TestRegisterType_LastWriteWins(t *testing.T) {
	r := resolver.New()
	r.MustRegisterType(resolver.TypeInfo{
		Name: "Thing",
		New:  func(args ...any) (any, error) { return "first", nil },
	})
	r.MustRegisterType(resolver.TypeInfo{
		Name: "Thing",
		New:  func(args ...any) (any, error) { return "second", nil },
	})

	inst, err := r.Instantiate("Thing")
	require.NoError(t, err)
	assert.Equal(t, "second", inst)
}

func TestMustRegisterType_PanicsOnBadDescriptor(t *testing.T) {
	r := resolver.New()
	assert.Panics(t, func() {
		r.MustRegisterType(resolver.TypeInfo{})
	})
}

func TestKnown(t *testing.T) {
	r := resolver.New()
	assert.False(t, r.Known("Thing"))
	r.MustRegisterType(resolver.TypeInfo{Name: "Thing", Abstract: true})
	assert.True(t, r.Known("Thing"))
}

// ── MergedConfiguration ───────────────────────────────────────────────────────

// registerChain registers Base ← Middle ← Leaf with a factory that records
// the resolved "x" value.
func registerChain(r *resolver.Resolver, got *any) {
	record := func(args ...any) (any, error) {
		*got = args[0]
		return struct{}{}, nil
	}
	x := []resolver.Param{{Name: "x", Kind: resolver.KindScalar}}
	r.MustRegisterType(resolver.TypeInfo{Name: "Base", Params: x, New: record})
	r.MustRegisterType(resolver.TypeInfo{Name: "Middle", Extends: "Base", Params: x, New: record})
	r.MustRegisterType(resolver.TypeInfo{Name: "Leaf", Extends: "Middle", Params: x, New: record})
}

func TestMergedConfiguration_SubtypeOverridesAncestor(t *testing.T) {
	r := resolver.New()
	var got any
	registerChain(r, &got)
	r.Configure("Base", config.NewStore().With("x", 1))
	r.Configure("Leaf", config.NewStore().With("x", 2))

	_, err := r.Instantiate("Leaf")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMergedConfiguration_SubtypeInheritsAncestor(t *testing.T) {
	r := resolver.New()
	var got any
	registerChain(r, &got)
	r.Configure("Base", config.NewStore().With("x", 1))

	_, err := r.Instantiate("Middle")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestMergedConfiguration_NearerAncestorWins(t *testing.T) {
	r := resolver.New()
	var got any
	registerChain(r, &got)
	r.Configure("Base", config.NewStore().With("x", 1))
	r.Configure("Middle", config.NewStore().With("x", 7))

	_, err := r.Instantiate("Leaf")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestMergedConfiguration_FoldOrderMostDistantFirst(t *testing.T) {
	r := resolver.New()
	var got any
	registerChain(r, &got)
	r.Configure("Base", config.NewStore().With("a", 1).With("x", 1))
	r.Configure("Leaf", config.NewStore().With("x", 2).With("b", 3))

	merged := r.MergedConfiguration("Leaf")

	// Base folds first, Leaf last; overwritten keys keep their original
	// position.
	assert.Equal(t, []string{"a", "x", "b"}, merged.Keys())
	assert.Equal(t, 2, merged.Get("x"))
	assert.Equal(t, 1, merged.Get("a"))
	assert.Equal(t, 3, merged.Get("b"))
}

func TestMergedConfiguration_RecomputedPerCall(t *testing.T) {
	r := resolver.New()
	var got any
	registerChain(r, &got)
	r.Configure("Base", config.NewStore().With("x", 1))

	first := r.MergedConfiguration("Leaf")
	assert.Equal(t, 1, first.Get("x"))

	r.Configure("Base", config.NewStore().With("x", 9))
	second := r.MergedConfiguration("Leaf")
	assert.Equal(t, 9, second.Get("x"))
}

func TestConfigure_ReplacesPriorStore(t *testing.T) {
	r := resolver.New()
	var got any
	registerChain(r, &got)
	r.Configure("Base", config.NewStore().With("x", 1).With("extra", true))
	r.Configure("Base", config.NewStore().With("x", 2))

	merged := r.MergedConfiguration("Base")
	assert.False(t, merged.Has("extra"), "Configure replaces, it does not merge")
	assert.Equal(t, 2, merged.Get("x"))
}
