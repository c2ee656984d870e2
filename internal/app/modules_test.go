package app

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"testing"

	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/ctxlog"
	"github.com/specialistvlad/enforcetyping/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelOf(packages ...*config.Package) *config.Model {
	m := config.NewModel()
	for _, p := range packages {
		m.Packages[p.Path] = p
	}
	return m
}

func TestInstallPackages_BuildsClassesLazily(t *testing.T) {
	model := modelOf(
		&config.Package{Path: "app.models", Classes: []*config.Class{
			{Name: "Admin", Extends: "app.models.User", Attributes: []*config.Attribute{{Name: "level", Type: "int"}}},
			{Name: "User", Attributes: []*config.Attribute{{Name: "name", Type: "str"}}},
		}},
		&config.Package{Path: "app.extra", Classes: []*config.Class{
			{Name: "Root", Extends: "app.models.Admin"},
		}},
	)
	reg := registry.New()
	require.NoError(t, installPackages(context.Background(), reg, model))

	_, ok := reg.Lookup("app.models.User")
	assert.False(t, ok, "classes must not be built before their package is resolved")

	root, err := reg.Resolve(context.Background(), "app.extra.Root")
	require.NoError(t, err)
	admin, ok := reg.Lookup("app.models.Admin")
	require.True(t, ok, "resolving a class loads the package of its base")
	user, ok := reg.Lookup("app.models.User")
	require.True(t, ok)

	assert.Same(t, admin, root.Base())
	assert.Same(t, user, admin.Base())
	assert.True(t, reg.IsSubclass(root, user))

	goType := root.GoType()
	require.Equal(t, reflect.Struct, goType.Kind())
	require.Equal(t, 3, goType.NumField())
	assert.Equal(t, `class:"app.extra.Root"`, string(goType.Field(0).Tag))
	assert.Equal(t, "Name", goType.Field(1).Name)
	assert.Equal(t, "Level", goType.Field(2).Name)
	assert.Equal(t, "level", goType.Field(2).Tag.Get("cty"))
}

func TestInstallPackages_LogsHierarchy(t *testing.T) {
	model := modelOf(
		&config.Package{Path: "app.models", Classes: []*config.Class{
			{Name: "User"},
			{Name: "Admin", Extends: "app.models.User"},
		}},
		&config.Package{Path: "app.extra", Classes: []*config.Class{
			{Name: "Root", Extends: "app.models.Admin"},
		}},
	)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	reg := registry.New()
	require.NoError(t, installPackages(ctx, reg, model))

	assert.Equal(t, []string{"app.extra", "app.models"}, reg.Packages())
	out := logs.String()
	assert.Contains(t, out, "class=app.models.User attributes=0 subclasses=[app.models.Admin]")
	assert.Contains(t, out, "package=app.extra extends_packages=[app.models]")
}

func TestInstallPackages_IdenticalClassesStayDistinct(t *testing.T) {
	attrs := []*config.Attribute{{Name: "id", Type: "int"}}
	model := modelOf(&config.Package{Path: "shop", Classes: []*config.Class{
		{Name: "Order", Attributes: attrs},
		{Name: "Invoice", Attributes: attrs},
	}})
	reg := registry.New()
	require.NoError(t, installPackages(context.Background(), reg, model))

	order, err := reg.Resolve(context.Background(), "shop.Order")
	require.NoError(t, err)
	invoice, err := reg.Resolve(context.Background(), "shop.Invoice")
	require.NoError(t, err)

	assert.NotEqual(t, order.GoType(), invoice.GoType())
	assert.NotSame(t, order, invoice)
}

func TestInstallPackages_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		packages []*config.Package
		want     string
	}{
		{
			name:     "invalid package path",
			packages: []*config.Package{{Path: "app..models"}},
			want:     "invalid package path 'app..models'",
		},
		{
			name:     "invalid class name",
			packages: []*config.Package{{Path: "app", Classes: []*config.Class{{Name: "a.b"}}}},
			want:     "invalid class name 'a.b'",
		},
		{
			name:     "unknown base",
			packages: []*config.Package{{Path: "app", Classes: []*config.Class{{Name: "A", Extends: "app.B"}}}},
			want:     "class 'app.A' extends unknown class 'app.B'",
		},
		{
			name: "class cycle",
			packages: []*config.Package{{Path: "app", Classes: []*config.Class{
				{Name: "A", Extends: "app.B"},
				{Name: "B", Extends: "app.A"},
			}}},
			want: "invalid class hierarchy",
		},
		{
			name: "package cycle",
			packages: []*config.Package{
				{Path: "one", Classes: []*config.Class{{Name: "A"}, {Name: "C", Extends: "two.B"}}},
				{Path: "two", Classes: []*config.Class{{Name: "B", Extends: "one.A"}}},
			},
			want: "packages must not extend each other's classes",
		},
		{
			name: "redeclared attribute type",
			packages: []*config.Package{{Path: "app", Classes: []*config.Class{
				{Name: "A", Attributes: []*config.Attribute{{Name: "x", Type: "int"}}},
				{Name: "B", Extends: "app.A", Attributes: []*config.Attribute{{Name: "x", Type: "str"}}},
			}}},
			want: "redeclared as str, inherited as int",
		},
		{
			name: "conflicting go names",
			packages: []*config.Package{{Path: "app", Classes: []*config.Class{
				{Name: "A", Attributes: []*config.Attribute{{Name: "x", Type: "int"}, {Name: "X", Type: "int"}}},
			}}},
			want: "conflicts with another attribute",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := installPackages(context.Background(), registry.New(), modelOf(tc.packages...))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestClassFields_RedeclaredSameTypeIsKept(t *testing.T) {
	built := map[string][]reflect.StructField{}
	base, err := classFields("app.A", &config.Class{Name: "A", Attributes: []*config.Attribute{{Name: "x", Type: "int"}}}, built)
	require.NoError(t, err)
	built["app.A"] = base

	fields, err := classFields("app.B", &config.Class{Name: "B", Extends: "app.A", Attributes: []*config.Attribute{{Name: "x", Type: "int"}}}, built)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "X", fields[1].Name)
}

func TestExportedName(t *testing.T) {
	assert.Equal(t, "Name", exportedName("name"))
	assert.Equal(t, "X_private", exportedName("_private"))
}
