package lapisdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClause(t *testing.T) {

	t.Run("splits keywords in input order", func(t *testing.T) {
		out := ParseClause("where x = 1 order by y limit 10")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "x = 1"},
			{Name: "order", Body: "y"},
			{Name: "limit", Body: "10"},
		}, out)
	})

	t.Run("keywords match case insensitively", func(t *testing.T) {
		out := ParseClause("WHERE x = 1 Order BY y")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "x = 1"},
			{Name: "order", Body: "y"},
		}, out)
	})

	t.Run("group strips the leading by", func(t *testing.T) {
		out := ParseClause("group by name having count(*) > 1")
		assert.Equal(t, []Clause{
			{Name: "group", Body: "name"},
			{Name: "having", Body: "count(*) > 1"},
		}, out)
	})

	t.Run("quoted strings are opaque", func(t *testing.T) {
		out := ParseClause("where name = 'order by x' limit 5")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "name = 'order by x'"},
			{Name: "limit", Body: "5"},
		}, out)
	})

	t.Run("double quoted identifiers are opaque", func(t *testing.T) {
		out := ParseClause(`where "order" = 1 offset 2`)
		assert.Equal(t, []Clause{
			{Name: "where", Body: `"order" = 1`},
			{Name: "offset", Body: "2"},
		}, out)
	})

	t.Run("doubled quotes stay inside the string", func(t *testing.T) {
		out := ParseClause("where a = 'it''s a limit' limit 1")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "a = 'it''s a limit'"},
			{Name: "limit", Body: "1"},
		}, out)
	})

	t.Run("keywords inside words do not split", func(t *testing.T) {
		out := ParseClause("where xorder = 1 and limits = 2")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "xorder = 1 and limits = 2"},
		}, out)
	})

	t.Run("input without a leading keyword yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseClause("x = 1 order by y"))
		assert.Empty(t, ParseClause(""))
		assert.Empty(t, ParseClause("   "))
	})

	t.Run("repeated keywords emit repeated pairs", func(t *testing.T) {
		out := ParseClause("where a = 1 where b = 2")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "a = 1"},
			{Name: "where", Body: "b = 2"},
		}, out)
	})

	t.Run("an unterminated quote truncates the rest", func(t *testing.T) {
		out := ParseClause("where a = 'unclosed order by x")
		assert.Equal(t, []Clause{
			{Name: "where", Body: "a ="},
		}, out)
	})

	t.Run("bare group by", func(t *testing.T) {
		out := ParseClause("group by")
		assert.Equal(t, []Clause{{Name: "group", Body: ""}}, out)
	})
}
