package overlay

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/MKhiriev/go-env-overlay/envsource"
	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/internal/mock"
	"github.com/MKhiriev/go-env-overlay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func mockBase() models.Value {
	return models.MustFromAny(map[string]any{
		"name": "mock",
		"server": map[string]any{
			"port":      8080,
			"base_path": "/api",
		},
		"logs": []any{
			map[string]any{
				"level":  "info",
				"output": "console",
			},
		},
		"nums": []any{1, 2, 3},
	})
}

func mustField(t *testing.T, v models.Value, keys ...string) models.Value {
	t.Helper()
	for _, k := range keys {
		if i, err := strconv.Atoi(k); err == nil {
			item, ok := v.Index(i)
			require.True(t, ok, "missing index %d", i)
			v = item
			continue
		}
		field, ok := v.Field(k)
		require.True(t, ok, "missing key %q", k)
		v = field
	}
	return v
}

func apply(t *testing.T, root models.Value, spec models.OverlaySpec, env envsource.Environment) []models.Override {
	t.Helper()
	applied, err := NewEngine(env, logger.Nop()).Apply(root, spec)
	require.NoError(t, err)
	return applied
}

// ── Apply ─────────────────────────────────────────────────────────────────────

func TestApply_MockScenarios(t *testing.T) {
	separators := []string{"__", "::"}

	for _, sep := range separators {
		t.Run(sep, func(t *testing.T) {
			// Arrange
			name := func(segments ...string) string { return strings.Join(segments, sep) }
			env := envsource.Map{
				name("MOCK", "SERVER", "PORT"):      "6666",
				name("MOCK", "SERVER", "BASE_PATH"): "/mockpath",
				name("MOCK", "LOGS", "0", "LEVEL"):  "custom",
				name("MOCK", "NUMS", "0"):           "8",
			}
			root := mockBase()

			// Act
			applied := apply(t, root, models.OverlaySpec{Prefix: "MOCK", Separator: sep}, env)

			// Assert
			assert.Len(t, applied, 4)
			assert.Equal(t, models.String("mock"), mustField(t, root, "name"))
			assert.Equal(t, models.Int(6666), mustField(t, root, "server", "port"))
			assert.Equal(t, models.String("/mockpath"), mustField(t, root, "server", "base_path"))
			assert.Equal(t, models.String("custom"), mustField(t, root, "logs", "0", "level"))
			assert.Equal(t, models.String("console"), mustField(t, root, "logs", "0", "output"))
			assert.Equal(t, models.Int(8), mustField(t, root, "nums", "0"))
			assert.Equal(t, models.Int(2), mustField(t, root, "nums", "1"))
			assert.Equal(t, models.Int(3), mustField(t, root, "nums", "2"))
		})
	}
}

func TestApply_ReportsOverridesInVisitOrder(t *testing.T) {
	env := envsource.Map{
		"MOCK__SERVER__PORT":    "6666",
		"MOCK__LOGS__0__LEVEL":  "custom",
		"MOCK__NUMS__2":         "9",
		"MOCK__NAME":            "renamed",
		"MOCK__UNRELATED__PATH": "ignored",
	}

	applied := apply(t, mockBase(), models.OverlaySpec{Prefix: "MOCK"}, env)

	assert.Equal(t, []models.Override{
		{Path: "logs.0.level", VarName: "MOCK__LOGS__0__LEVEL", Kind: models.KindString},
		{Path: "name", VarName: "MOCK__NAME", Kind: models.KindString},
		{Path: "nums.2", VarName: "MOCK__NUMS__2", Kind: models.KindInt},
		{Path: "server.port", VarName: "MOCK__SERVER__PORT", Kind: models.KindInt},
	}, applied)
}

func TestApply_DefaultSeparator(t *testing.T) {
	root := mockBase()

	apply(t, root, models.OverlaySpec{Prefix: "mock"}, envsource.Map{"MOCK__SERVER__PORT": "1"})

	assert.Equal(t, models.Int(1), mustField(t, root, "server", "port"))
}

func TestApply_EmptyPrefix(t *testing.T) {
	root := mockBase()
	env := envsource.Map{
		"NAME":           "top",
		"SERVER__PORT":   "7000",
		"NUMS__1":        "20",
		"LOGS__0__LEVEL": "warn",
	}

	apply(t, root, models.OverlaySpec{}, env)

	assert.Equal(t, models.String("top"), mustField(t, root, "name"))
	assert.Equal(t, models.Int(7000), mustField(t, root, "server", "port"))
	assert.Equal(t, models.Int(20), mustField(t, root, "nums", "1"))
	assert.Equal(t, models.String("warn"), mustField(t, root, "logs", "0", "level"))
}

func TestApply_CamelCaseKeysAreSnakified(t *testing.T) {
	root := models.MustFromAny(map[string]any{
		"httpServer": map[string]any{
			"basePath": "/api",
		},
		"logTargets": []any{"stdout"},
	})
	env := envsource.Map{
		"APP__HTTP_SERVER__BASE_PATH": "/v2",
		"APP__LOG_TARGETS__0":         "stderr",
	}

	apply(t, root, models.OverlaySpec{Prefix: "app"}, env)

	assert.Equal(t, models.String("/v2"), mustField(t, root, "httpServer", "basePath"))
	assert.Equal(t, models.String("stderr"), mustField(t, root, "logTargets", "0"))
}

func TestApply_AbsentVariablesLeaveTreeUnchanged(t *testing.T) {
	root := mockBase()
	want := root.Clone()

	applied := apply(t, root, models.OverlaySpec{Prefix: "MOCK"}, envsource.Map{})

	assert.Empty(t, applied)
	assert.True(t, want.Equal(root), "tree changed: %s", root)
}

func TestApply_Coercion(t *testing.T) {
	tests := []struct {
		name string
		orig models.Value
		raw  string
		want models.Value
	}{
		{name: "integer", orig: models.Int(1), raw: "42", want: models.Int(42)},
		{name: "negative integer", orig: models.Int(1), raw: "-7", want: models.Int(-7)},
		{name: "integer with spaces", orig: models.Int(1), raw: " 15 ", want: models.Int(15)},
		{name: "integer with digit separators", orig: models.Int(1), raw: "1_000", want: models.Int(1000)},
		{name: "signed integer with separators", orig: models.Int(1), raw: "-2_5", want: models.Int(-25)},
		{name: "integer keeps leading zeros decimal", orig: models.Int(1), raw: "010", want: models.Int(10)},
		{name: "float with digit separators", orig: models.Float(0.5), raw: "1_000.2_5", want: models.Float(1000.25)},
		{name: "float", orig: models.Float(0.5), raw: "2.25", want: models.Float(2.25)},
		{name: "float from integral text", orig: models.Float(0.5), raw: "3", want: models.Float(3)},
		{name: "float infinity", orig: models.Float(0.5), raw: "inf", want: models.Float(math.Inf(1))},
		{name: "bool true", orig: models.Bool(false), raw: "true", want: models.Bool(true)},
		{name: "bool TRUE", orig: models.Bool(false), raw: "TRUE", want: models.Bool(true)},
		{name: "bool yes is false", orig: models.Bool(true), raw: "yes", want: models.Bool(false)},
		{name: "bool 1 is false", orig: models.Bool(true), raw: "1", want: models.Bool(false)},
		{name: "bool empty is false", orig: models.Bool(true), raw: "", want: models.Bool(false)},
		{name: "string", orig: models.String("a"), raw: "b", want: models.String("b")},
		{name: "string keeps spaces", orig: models.String("a"), raw: "  b ", want: models.String("  b ")},
		{name: "string numeric text", orig: models.String("a"), raw: "123", want: models.String("123")},
		{name: "string empty", orig: models.String("a"), raw: "", want: models.String("")},
		{name: "null becomes string", orig: models.Null(), raw: "42", want: models.String("42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := models.Mapping(map[string]models.Value{"leaf": tt.orig})

			apply(t, root, models.OverlaySpec{Prefix: "T"}, envsource.Map{"T__LEAF": tt.raw})

			got := mustField(t, root, "leaf")
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestApply_InvalidNumberAbortsPass(t *testing.T) {
	tests := []struct {
		name string
		orig models.Value
		raw  string
		kind models.Kind
	}{
		{name: "integer from word", orig: models.Int(1), raw: "abc", kind: models.KindInt},
		{name: "integer from float text", orig: models.Int(1), raw: "1.5", kind: models.KindInt},
		{name: "integer overflow", orig: models.Int(1), raw: "99999999999999999999", kind: models.KindInt},
		{name: "float from word", orig: models.Float(1), raw: "fast", kind: models.KindFloat},
		{name: "empty integer", orig: models.Int(1), raw: "", kind: models.KindInt},
		{name: "leading separator", orig: models.Int(1), raw: "_1", kind: models.KindInt},
		{name: "trailing separator", orig: models.Int(1), raw: "1_", kind: models.KindInt},
		{name: "doubled separator", orig: models.Int(1), raw: "1__0", kind: models.KindInt},
		{name: "separator after sign", orig: models.Int(1), raw: "-_1", kind: models.KindInt},
		{name: "hex prefix", orig: models.Int(1), raw: "0x1f", kind: models.KindInt},
		{name: "float separator before point", orig: models.Float(1), raw: "1_.5", kind: models.KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := models.Mapping(map[string]models.Value{"leaf": tt.orig})

			applied, err := NewEngine(envsource.Map{"T__LEAF": tt.raw}, nil).
				Apply(root, models.OverlaySpec{Prefix: "T"})

			require.Error(t, err)
			assert.Nil(t, applied)
			assert.ErrorIs(t, err, ErrInvalidOverlayValue)

			var invalid *InvalidOverlayValueError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "T__LEAF", invalid.VarName)
			assert.Equal(t, tt.raw, invalid.RawValue)
			assert.Equal(t, tt.kind, invalid.Kind)
			assert.Error(t, errors.Unwrap(invalid), "strconv cause is kept")
		})
	}
}

func TestApply_InvalidNumberInSequence(t *testing.T) {
	_, err := NewEngine(envsource.Map{"MOCK__NUMS__1": "two"}, nil).
		Apply(mockBase(), models.OverlaySpec{Prefix: "MOCK"})

	var invalid *InvalidOverlayValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "MOCK__NUMS__1", invalid.VarName)
	assert.Contains(t, err.Error(), "MOCK__NUMS__1")
	assert.Contains(t, err.Error(), "two")
}

func TestApply_NestedSequenceIsLeftAlone(t *testing.T) {
	root := models.MustFromAny(map[string]any{
		"matrix": []any{[]any{1, 2}, 3},
	})
	env := envsource.Map{
		"M__MATRIX__0":    "x",
		"M__MATRIX__0__0": "9",
		"M__MATRIX__1":    "30",
	}

	applied := apply(t, root, models.OverlaySpec{Prefix: "M"}, env)

	assert.Len(t, applied, 1)
	assert.Equal(t, models.Int(1), mustField(t, root, "matrix", "0", "0"))
	assert.Equal(t, models.Int(30), mustField(t, root, "matrix", "1"))
}

func TestApply_NoKeyCreation(t *testing.T) {
	root := models.MustFromAny(map[string]any{"server": map[string]any{"port": 1}})
	env := envsource.Map{
		"APP__SERVER__HOST": "example.com",
		"APP__CLIENT":       "new",
	}

	apply(t, root, models.OverlaySpec{Prefix: "APP"}, env)

	assert.Equal(t, 1, root.Len())
	assert.Equal(t, 1, mustField(t, root, "server").Len())
}

func TestApply_NonMappingRootIsSkipped(t *testing.T) {
	for _, root := range []models.Value{
		models.Int(1),
		models.Null(),
		models.MustFromAny([]any{1, 2}),
	} {
		want := root.Clone()

		applied := apply(t, root, models.OverlaySpec{}, envsource.Map{"0": "5"})

		assert.Empty(t, applied)
		assert.True(t, want.Equal(root))
	}
}

func TestApply_LooksUpEveryLeafOnce(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	env := mock.NewMockEnvironment(ctrl)

	root := mockBase()
	for _, name := range []string{
		"MOCK__NAME",
		"MOCK__SERVER__BASE_PATH",
		"MOCK__LOGS__0__LEVEL",
		"MOCK__LOGS__0__OUTPUT",
		"MOCK__NUMS__0",
		"MOCK__NUMS__2",
	} {
		env.EXPECT().Lookup(name).Return("", false).Times(1)
	}
	env.EXPECT().Lookup("MOCK__SERVER__PORT").Return("6666", true).Times(1)
	env.EXPECT().Lookup("MOCK__NUMS__1").Return("20", true).Times(1)

	// Act
	applied, err := NewEngine(env, logger.Nop()).Apply(root, models.OverlaySpec{Prefix: "MOCK"})

	// Assert
	require.NoError(t, err)
	assert.Len(t, applied, 2)
	assert.Equal(t, models.Int(6666), mustField(t, root, "server", "port"))
	assert.Equal(t, models.Int(20), mustField(t, root, "nums", "1"))
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Setenv("ENGINE_DEFAULTS__FLAG", "true")
	root := models.Mapping(map[string]models.Value{"flag": models.Bool(false)})

	applied, err := NewEngine(nil, nil).Apply(root, models.OverlaySpec{Prefix: "ENGINE_DEFAULTS"})

	require.NoError(t, err)
	assert.Len(t, applied, 1)
	assert.Equal(t, models.Bool(true), mustField(t, root, "flag"))
}
