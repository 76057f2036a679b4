package lapisdb

import "strings"

// Clause is one named trailing fragment of a statement, e.g. {"where", "x = 1"}.
type Clause struct {
	Name string
	Body string
}

var clauseKeywords = map[string]bool{
	"where":  true,
	"group":  true,
	"having": true,
	"order":  true,
	"limit":  true,
	"offset": true,
}

// ParseClause splits a trailing clause string such as
// "where x = 1 order by y limit 10" into an ordered list of (keyword, body)
// pairs. Keywords are matched case-insensitively at word boundaries; quoted
// strings (single or double, with doubled-quote escaping) are opaque and
// never match a keyword. For group and order a leading "by" is stripped from
// the body. Input that does not start with a keyword yields an empty list.
//
// An unterminated quote truncates: the partial quote and everything after it
// are dropped and parsing stops, keeping the clauses found so far.
func ParseClause(s string) []Clause {
	var out []Clause
	p := skipSpace(s, 0)
	for p < len(s) {
		kw, bodyStart := matchKeyword(s, p)
		if kw == "" {
			break
		}
		body, next, ok := scanBody(s, bodyStart)
		body = strings.TrimSpace(body)
		if kw == "group" || kw == "order" {
			body = stripBy(body)
		}
		out = append(out, Clause{Name: kw, Body: body})
		if !ok {
			break
		}
		p = skipSpace(s, next)
	}
	return out
}

func skipSpace(s string, p int) int {
	for p < len(s) && isSpace(s[p]) {
		p++
	}
	return p
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// matchKeyword matches a clause keyword starting exactly at p. It returns the
// lowercased keyword and the position after it, or "" when the word at p is
// not a keyword.
func matchKeyword(s string, p int) (string, int) {
	end := p
	for end < len(s) && isWordChar(s[end]) {
		end++
	}
	word := strings.ToLower(s[p:end])
	if !clauseKeywords[word] {
		return "", p
	}
	return word, end
}

// scanBody consumes clause content starting at p until the next keyword at a
// word boundary or the end of input. It returns the raw body, the position of
// the next keyword, and false when an unterminated quote forced truncation.
func scanBody(s string, p int) (string, int, bool) {
	i := p
	prevWord := false
	for i < len(s) {
		c := s[i]
		if c == '\'' || c == '"' {
			end, closed := scanQuoted(s, i)
			if !closed {
				return s[p:i], len(s), false
			}
			i = end
			prevWord = false
			continue
		}
		if !prevWord && isWordChar(c) {
			if kw, _ := matchKeyword(s, i); kw != "" {
				return s[p:i], i, true
			}
		}
		prevWord = isWordChar(c)
		i++
	}
	return s[p:], i, true
}

// scanQuoted consumes a quoted string opening at p. A doubled quote char
// stays inside the string. It returns the position after the closing quote
// and whether the string was terminated.
func scanQuoted(s string, p int) (int, bool) {
	q := s[p]
	i := p + 1
	for i < len(s) {
		if s[i] != q {
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == q {
			i += 2
			continue
		}
		return i + 1, true
	}
	return i, false
}

// stripBy removes a leading "by" keyword from a group/order body.
func stripBy(body string) string {
	if len(body) < 2 || !strings.EqualFold(body[:2], "by") {
		return body
	}
	if len(body) == 2 {
		return ""
	}
	if !isSpace(body[2]) {
		return body
	}
	return strings.TrimLeft(body[2:], " \t\n\r")
}
