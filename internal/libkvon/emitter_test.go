// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libkvon

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"go.kvon.dev/kvon/internal/testutil/assert"
)

func TestEncodeLayout(t *testing.T) {
	v := obj(
		"a", Array(Number(1), Number(2)),
		"b", obj("c", Text("x")),
		"d", Array(obj("e", Number(1)), Text("it's")),
		"n", None(),
		"t", Bool(true),
	)
	want := doc(
		"a: [1 2]",
		"b:",
		"\tc: 'x'",
		"d:--",
		"\t-",
		"\t\te: 1",
		"\t- |",
		"\t\tit's",
		"n: null",
		"t: true",
	)
	assert.Equal(t, want, Encode(v, Tabs()))
}

func TestEncodeNestedBlockArrays(t *testing.T) {
	v := obj("m", Array(
		Array(Text("a\nb"), Number(2)),
		Number(3),
	))
	want := doc(
		"m:--",
		"  --",
		"    - |",
		"      a",
		"      b",
		"    - 2",
		"  - 3",
	)
	assert.Equal(t, want, Encode(v, Spaces(2)))
}

func TestEncodeInlineNestedArrays(t *testing.T) {
	v := obj("grid", Array(Array(Number(1), Number(2)), Array()))
	assert.Equal(t, "grid: [[1 2] []]", Encode(v, Tabs()))
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(1.5), "1.5"},
		{Number(-3), "-3"},
		{Number(1e21), "1000000000000000000000"},
		{Bool(false), "false"},
		{None(), "null"},
		{Text("plain"), "'plain'"},
		{Text(`say "hi"`), "|\n" + `say "hi"`},
		{Text(""), "|"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Encode(tt.v, Tabs()))
	}
}

func TestEncodeCarriageReturns(t *testing.T) {
	got, err := Parse(Encode(obj("crlf", Text("it's\r\ny"), "cr", Text("a\rb")), Tabs()))
	assert.NoError(t, err)
	assert.Same(t, obj("crlf", Text("it's\ny"), "cr", Text("a\rb")), got)
}

func TestEncodeNonFiniteNumbers(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Parse("n: " + Encode(Number(f), Tabs()))
		assert.ErrorIs(t, err, UnexpectedCharacter)
	}
}

func TestEncodeEmptyObject(t *testing.T) {
	assert.Equal(t, "", Encode(Object(nil), Tabs()))
	assert.Equal(t, "a:", Encode(obj("a", Object(nil)), Tabs()))
}

func TestQuoteKey(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"with space", "'with space'"},
		{"a:b", "'a:b'"},
		{"#tag", "'#tag'"},
		{"it's here", `"it's here"`},
		{"'lead", `"'lead"`},
		{`both ' and "`, `''both ' and "''`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quoteKey(tt.key))
	}
}

func TestEncodeQuotedKeysRoundTrip(t *testing.T) {
	v := obj(
		"with space", Number(1),
		"semi;colon", Array(Number(1), Text("x")),
		"it's", obj("#inner", Bool(true)),
		`x"y'z`, None(),
		"", Number(0),
	)
	for _, style := range []Indention{Tabs(), Spaces(3)} {
		got, err := Parse(Encode(v, style))
		assert.NoErrorf(t, err, "style %s", style)
		assert.Samef(t, v, got, "style %s", style)
	}
}

func TestEncodeTextBlocksRoundTrip(t *testing.T) {
	v := obj(
		"quote", Text("it's"),
		"lines", Text("one\n  two\nthree"),
		"empty", Text(""),
		"trailing", Text("end\n"),
		"list", Array(Text("a\"b"), Text(""), Number(1)),
	)
	for _, style := range []Indention{Tabs(), Spaces(1), Spaces(2), Spaces(4)} {
		got, err := Parse(Encode(v, style))
		assert.NoErrorf(t, err, "style %s", style)
		assert.Samef(t, v, got, "style %s", style)
	}
}

// randomValue builds trees from the leaves that always round-trip.
func randomValue(r *rand.Rand, depth int) Value {
	n := r.Intn(7)
	if depth <= 0 && n >= 5 {
		n = r.Intn(5)
	}
	switch n {
	case 0:
		return Number(float64(r.Intn(2000)-1000) / 8)
	case 1:
		return Bool(r.Intn(2) == 0)
	case 2:
		return None()
	case 3:
		return Text("t" + strconv.Itoa(r.Intn(100)))
	case 4:
		return Text(strings.Repeat("w ", r.Intn(3)) + "x")
	case 5:
		items := make([]Value, r.Intn(4))
		for i := range items {
			items[i] = randomValue(r, depth-1)
		}
		return Array(items...)
	}
	return randomObject(r, depth-1)
}

func randomObject(r *rand.Rand, depth int) Value {
	m := map[string]Value{}
	for i := r.Intn(4); i > 0; i-- {
		m["k"+strconv.Itoa(r.Intn(50))] = randomValue(r, depth)
	}
	return Object(m)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	styles := []Indention{Tabs(), Spaces(1), Spaces(2), Spaces(4)}
	for i := 0; i < 300; i++ {
		v := randomObject(r, 4)
		for _, style := range styles {
			text := Encode(v, style)
			got, err := Parse(text)
			assert.NoErrorf(t, err, "style %s\n%s", style, text)
			assert.Samef(t, v, got, "style %s\n%s", style, text)
		}
	}
}
