package lapisdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLiteral(t *testing.T) {

	t.Run("strings are single quoted with quotes doubled", func(t *testing.T) {
		out, err := EscapeLiteral("it's")
		assert.NoError(t, err)
		assert.Equal(t, `'it''s'`, out)
	})

	t.Run("numbers become decimal text", func(t *testing.T) {
		for v, want := range map[any]string{
			42:            "42",
			int64(-7):     "-7",
			uint8(255):    "255",
			float64(1.5):  "1.5",
			float32(0.25): "0.25",
		} {
			out, err := EscapeLiteral(v)
			assert.NoError(t, err)
			assert.Equal(t, want, out)
		}
	})

	t.Run("booleans and sentinels", func(t *testing.T) {
		out, err := EscapeLiteral(true)
		assert.NoError(t, err)
		assert.Equal(t, "TRUE", out)

		out, err = EscapeLiteral(false)
		assert.NoError(t, err)
		assert.Equal(t, "FALSE", out)

		out, err = EscapeLiteral(True)
		assert.NoError(t, err)
		assert.Equal(t, "TRUE", out)

		out, err = EscapeLiteral(False)
		assert.NoError(t, err)
		assert.Equal(t, "FALSE", out)
	})

	t.Run("null and nil", func(t *testing.T) {
		out, err := EscapeLiteral(Null)
		assert.NoError(t, err)
		assert.Equal(t, "NULL", out)

		out, err = EscapeLiteral(nil)
		assert.NoError(t, err)
		assert.Equal(t, "NULL", out)
	})

	t.Run("raw passes through verbatim", func(t *testing.T) {
		out, err := EscapeLiteral(Raw("now() at time zone 'utc'"))
		assert.NoError(t, err)
		assert.Equal(t, "now() at time zone 'utc'", out)
	})

	t.Run("time becomes a quoted utc timestamp", func(t *testing.T) {
		loc := time.FixedZone("x", 2*3600)
		out, err := EscapeLiteral(time.Date(2023, 1, 2, 17, 4, 5, 0, loc))
		assert.NoError(t, err)
		assert.Equal(t, "'2023-01-02 15:04:05'", out)
	})

	t.Run("unsupported types fail", func(t *testing.T) {
		_, err := EscapeLiteral([]int{1, 2})
		var escErr *EscapeError
		assert.ErrorAs(t, err, &escErr)
	})
}

func TestEscapeIdentifier(t *testing.T) {

	t.Run("identifiers are double quoted with quotes doubled", func(t *testing.T) {
		out, err := EscapeIdentifier("users")
		assert.NoError(t, err)
		assert.Equal(t, `"users"`, out)

		out, err = EscapeIdentifier(`he"llo`)
		assert.NoError(t, err)
		assert.Equal(t, `"he""llo"`, out)
	})

	t.Run("raw passes through verbatim", func(t *testing.T) {
		out, err := EscapeIdentifier(Raw("count(*)"))
		assert.NoError(t, err)
		assert.Equal(t, "count(*)", out)
	})

	t.Run("unsupported types fail", func(t *testing.T) {
		_, err := EscapeIdentifier(42)
		var escErr *EscapeError
		assert.ErrorAs(t, err, &escErr)
	})
}

func TestRaw(t *testing.T) {
	assert.True(t, IsRaw(Raw("x")))
	assert.True(t, IsRaw(True))
	assert.False(t, IsRaw("x"))
	assert.False(t, IsRaw(Null))
	assert.Equal(t, "x", Raw("x").String())
}

func TestInterpolate(t *testing.T) {

	t.Run("placeholders are replaced in order", func(t *testing.T) {
		out, err := Interpolate("a = ? and b = ?", 1, "x")
		assert.NoError(t, err)
		assert.Equal(t, "a = 1 and b = 'x'", out)
	})

	t.Run("template without placeholders is untouched", func(t *testing.T) {
		out, err := Interpolate("select 1")
		assert.NoError(t, err)
		assert.Equal(t, "select 1", out)
	})

	t.Run("missing argument fails instead of emitting NULL", func(t *testing.T) {
		_, err := Interpolate("a = ? and b = ?", 1)
		var escErr *EscapeError
		assert.ErrorAs(t, err, &escErr)
	})

	t.Run("argument escaping failures propagate", func(t *testing.T) {
		_, err := Interpolate("a = ?", struct{}{})
		var escErr *EscapeError
		assert.ErrorAs(t, err, &escErr)
	})

	t.Run("question marks inside escaped strings are not rescanned", func(t *testing.T) {
		out, err := Interpolate("a = ?", "what?")
		assert.NoError(t, err)
		assert.Equal(t, "a = 'what?'", out)
	})
}
