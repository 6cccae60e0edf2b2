package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/check"
	"github.com/reoring/goshape/dsl"
)

func TestFields_RunsEveryDeclaredValidator(t *testing.T) {
	decl := goshape.NewDecl(
		goshape.DeclField{Name: "a", Validator: dsl.String().Required()},
		goshape.DeclField{Name: "b", Validator: dsl.Number().Required()},
		goshape.DeclField{Name: "c", Validator: dsl.Bool()},
	)

	t.Run("aggregates all failures in declaration order", func(t *testing.T) {
		err := check.Fields(decl, goshape.NewObject(), "Widget")
		require.Error(t, err)
		iss, ok := goshape.AsIssues(err)
		require.True(t, ok)
		require.Len(t, iss, 2)
		assert.Equal(t, "a", iss[0].Path)
		assert.Equal(t, "b", iss[1].Path)
		assert.Equal(t, goshape.CodeRequired, iss[0].Code)
	})

	t.Run("passes on a conforming candidate", func(t *testing.T) {
		props := goshape.NewObject().
			MustSet("a", "str").
			MustSet("b", 1)
		assert.NoError(t, check.Fields(decl, props, "Widget"))
	})

	t.Run("nil declaration is a no-op", func(t *testing.T) {
		assert.NoError(t, check.Fields(nil, goshape.NewObject(), "Widget"))
	})
}

func TestRequiredFunc(t *testing.T) {
	t.Run("missing field fails", func(t *testing.T) {
		err := check.RequiredFunc.Check(goshape.NewObject(), "onChange", "Widget")
		iss, ok := goshape.AsIssues(err)
		require.True(t, ok)
		require.Len(t, iss, 1)
		assert.Equal(t, goshape.CodeRequired, iss[0].Code)
	})

	t.Run("non-function field fails", func(t *testing.T) {
		props := goshape.NewObject().MustSet("onChange", "nope")
		err := check.RequiredFunc.Check(props, "onChange", "Widget")
		iss, _ := goshape.AsIssues(err)
		require.Len(t, iss, 1)
		assert.Equal(t, goshape.CodeInvalidType, iss[0].Code)
	})

	t.Run("method, func, and reshape capabilities pass", func(t *testing.T) {
		props := goshape.NewObject().
			MustSet("m", goshape.Method(func(*goshape.Object, ...any) any { return nil })).
			MustSet("f", goshape.Func(func(...any) any { return nil })).
			MustSet("r", goshape.ReshapeFunc(func(goshape.Validator, ...goshape.ReshapeOpt) (*goshape.Object, error) { return nil, nil }))
		for _, name := range []string{"m", "f", "r"} {
			assert.NoError(t, check.RequiredFunc.Check(props, name, "Widget"))
		}
	})
}

func TestProps_WarnsOncePerFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	check.SetLogger(zap.New(core))
	check.ResetWarnings()
	t.Cleanup(func() {
		check.SetLogger(nil)
		check.ResetWarnings()
	})

	shape := dsl.Shape().
		Field("field1", dsl.Array().Required()).
		Field("field2", dsl.String().Required()).
		MustBuild()
	holder := goshape.NewObject().MustSet("config", goshape.NewObject())

	err := check.Props(shape, holder, "config", "Widget")
	require.Error(t, err, "validation failures still come back as values")

	// the same failure reported again must not log again
	_ = check.Props(shape, holder, "config", "Widget")

	entries := logs.All()
	require.Len(t, entries, 2, "one warning per distinct issue, logged once")
	assert.Contains(t, entries[0].Message, "failed prop type")
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Widget", ctx["owner"])
	assert.Equal(t, "config", ctx["field"])
}

func TestProps_PassesCleanCandidates(t *testing.T) {
	check.ResetWarnings()
	shape := dsl.Shape().Field("field2", dsl.String()).MustBuild()
	holder := goshape.NewObject().MustSet("config", goshape.NewObject().MustSet("field2", "x"))
	assert.NoError(t, check.Props(shape, holder, "config", "Widget"))
}
