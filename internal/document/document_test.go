package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsMemberOrder(t *testing.T) {
	doc, err := Parse([]byte(`{"b": 1, "a": [true, null, "x"], "c": {"d": 2.50}}`))
	require.NoError(t, err)

	members := doc.Root.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "b", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
	assert.Equal(t, "c", members[2].Key)

	arr, ok := doc.Root.Lookup("a")
	require.True(t, ok)
	require.Equal(t, KindArray, arr.Kind())
	elems := arr.Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, KindBool, elems[0].Kind())
	assert.Equal(t, KindNull, elems[1].Kind())
	assert.Equal(t, KindString, elems[2].Kind())

	// number literals survive untouched
	nested, _ := doc.Root.Lookup("c")
	assert.Equal(t, `{"d":2.50}`, nested.Text())
}

func TestLookupDuplicateKeyLastWins(t *testing.T) {
	doc, err := Parse([]byte(`{"name": "first", "name": "second"}`))
	require.NoError(t, err)

	assert.Equal(t, "second", doc.Root.StringOr("name", "Unknown"))
}

func TestHasDistinguishesNullFromAbsent(t *testing.T) {
	doc, err := Parse([]byte(`{"columns": null}`))
	require.NoError(t, err)

	assert.True(t, doc.Root.Has("columns"))
	assert.False(t, doc.Root.Has("indexes"))
	assert.Equal(t, "Unknown", doc.Root.StringOr("indexes", "Unknown"))
}

func TestLookupOnNonObject(t *testing.T) {
	v := Array(String("a"))

	_, ok := v.Lookup("a")
	assert.False(t, ok)
	assert.Nil(t, v.Members())
	assert.Nil(t, String("x").Elements())
}

func TestTextRendering(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"string", String("Notes"), "Notes"},
		{"number", Number("42"), "42"},
		{"bool", Bool(false), "false"},
		{"null", Null(), "null"},
		{"zero value", Value{}, "null"},
		{"array", Array(String("a\"b"), Number("1")), `["a\"b",1]`},
		{"object", Object(Member{Key: "k", Value: Bool(true)}), `{"k":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.val.Text())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"empty", "", 1},
		{"truncated object", `{"tables": [`, 1},
		{"truncated string", `{"tables": "abc`, 1},
		{"bad token", "{\n  \"tables\": nope\n}", 2},
		{"trailing comma", `{"a": 1,}`, 1},
		{"extra data", `{} {}`, 1},
		{"trailing garbage", "{}\nx", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.NotEmpty(t, perr.Reason)
			assert.Equal(t, tt.line, perr.Line)
			assert.GreaterOrEqual(t, perr.Column, 1)
		})
	}
}

func TestParseAllowsTrailingWhitespace(t *testing.T) {
	_, err := Parse([]byte("{\"tables\": []}\n\n  "))
	require.NoError(t, err)
}

func TestTables(t *testing.T) {
	t.Run("ordered collection", func(t *testing.T) {
		doc, err := Parse([]byte(`{"tables": [{"name": "a"}, {"name": "b"}]}`))
		require.NoError(t, err)

		tables, err := doc.Tables()
		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, "a", tables[0].StringOr("name", ""))
		assert.Equal(t, "b", tables[1].StringOr("name", ""))
	})

	t.Run("missing key is empty", func(t *testing.T) {
		doc, err := Parse([]byte(`{"projectId": "p1"}`))
		require.NoError(t, err)

		tables, err := doc.Tables()
		require.NoError(t, err)
		assert.NotNil(t, tables)
		assert.Empty(t, tables)
	})

	t.Run("tables not an array", func(t *testing.T) {
		doc, err := Parse([]byte(`{"tables": {"name": "a"}}`))
		require.NoError(t, err)

		_, err = doc.Tables()
		var serr *ShapeError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, TablesKey, serr.Path)
		assert.Equal(t, KindObject, serr.Got)
	})

	t.Run("root not an object", func(t *testing.T) {
		doc, err := Parse([]byte(`[1, 2]`))
		require.NoError(t, err)

		_, err = doc.Tables()
		var serr *ShapeError
		require.True(t, errors.As(err, &serr))
		assert.Contains(t, serr.Error(), "document root")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tables": []}`), 0o644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, doc.Source)
	})

	t.Run("malformed file carries source", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tables": [`), 0o644))

		_, err := Load(path)
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, path, perr.Source)
		assert.Contains(t, perr.Error(), path)
	})

	t.Run("missing file is not a parse error", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		require.Error(t, err)

		var perr *ParseError
		assert.False(t, errors.As(err, &perr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
