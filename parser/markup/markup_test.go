//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Kexogg
//
// This file is part of clean-code.
//
// clean-code is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Kexogg
//-----------------------------------------------------------------------------

// Package markup_test provides some tests for the markup parser.
package markup_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
	_ "github.com/Kexogg/clean-code/encoder/htmlenc"
	"github.com/Kexogg/clean-code/input"
	"github.com/Kexogg/clean-code/logger"
	"github.com/Kexogg/clean-code/parser"
	"github.com/Kexogg/clean-code/parser/markup"
)

type TestCase struct{ source, want string }
type TestCases []TestCase

func checkTcs(t *testing.T, tcs TestCases) {
	t.Helper()

	for tcn, tc := range tcs {
		tc := tc
		t.Run(fmt.Sprintf("TC=%02d,src=%q", tcn, tc.source), func(st *testing.T) {
			st.Helper()
			ns, err := parser.Parse(input.NewInput([]byte(tc.source)), "markup", nil)
			if err != nil {
				st.Fatal(err)
			}
			var tv TestVisitor
			ast.WalkNodeSlice(&tv, ns)
			got := tv.String()
			if tc.want != got {
				st.Errorf("\nwant=%q\n got=%q", tc.want, got)
			}
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"", ""},
		{"plain text", `"plain text"`},
		{"Hello, world!", `"Hello, world!"`},
		{`\`, `"\\"`},
		{`\not escaped tag\`, `"\\not escaped tag\\"`},
	})
}

func TestLineBreak(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"\n", `(BREAK)`},
		{"a\nb", `"a" (BREAK) "b"`},
		{"a\n\nb\n", `"a" (BREAK) (BREAK) "b" (BREAK)`},
		{"_a\nb_", `"_a" (BREAK) "b_"`},
		{"_a_\n_b_", `(ITALIC "a") (BREAK) (ITALIC "b")`},
		{"__unpaired_ tags\npaired __tag__", `"__unpaired_ tags" (BREAK) "paired " (BOLD "tag")`},
	})
}

func TestEmphasis(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"_cursive_", `(ITALIC "cursive")`},
		{"__strong__", `(BOLD "strong")`},
		{"_cursive_ and __strong__", `(ITALIC "cursive") " and " (BOLD "strong")`},
		{"__strong _cursive_ text__", `(BOLD "strong " (ITALIC "cursive") " text")`},
		{"_cursive __strong__ text_", `(ITALIC "cursive __strong__ text")`},
		{"Hello, _world_!", `"Hello, " (ITALIC "world") "!"`},
		{"_word _word word_", `(ITALIC "word _word word")`},
		{"word_ word_", `"word_ word_"`},
		{"_ a_", `"_ a_"`},
		{"____", `"____"`},
		{"__", `"__"`},
		{"_", `"_"`},
	})
}

func TestWordRules(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"word w__1__th numb_3_rs", `"word w__1__th numb_3_rs"`},
		{"a_1_b", `"a_1_b"`},
		{"cro_ss word t_ag", `"cro_ss word t_ag"`},
		{"cro_ss_ word t__a__g", `"cro" (ITALIC "ss") " word t" (BOLD "a") "g"`},
		{"В с_лов_е можно", `"В с" (ITALIC "лов") "е можно"`},
	})
}

func TestCrossing(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"__text with _intersecting__ tags_", `"__text with _intersecting__ tags_"`},
		{"_a __b_ c__", `"_a __b_ c__"`},
		{"_ab __cd_ ef__", `"_ab __cd_ ef__"`},
		{"__Вот _это __не_ сработает, это - _да_", `"__Вот _это __не_ сработает, это - " (ITALIC "да")`},
	})
}

func TestEscape(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{`\_escaped tag\_`, `"_escaped tag_"`},
		{`\_text\_`, `"_text_"`},
		{`\\_escaped escape character_`, `"\\" (ITALIC "escaped escape character")`},
		{`\__not bold\__`, `"__not bold__"`},
		{`\#no header`, `"#no header"`},
		{`\![alt](src)`, `"![alt](src)"`},
		{"a\\\nb", `"a\nb"`},
		{`_a\_b_`, `(ITALIC "a_b")`},
	})
}

func TestHeader(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"#Header", `(HEADER "Header")`},
		{"# Header", `(HEADER " Header")`},
		{"#Header\ntext", `(HEADER "Header") "text"`},
		{"#Header __bold__ text\nsecond line", `(HEADER "Header " (BOLD "bold") " text") "second line"`},
		{"#__Header with tag__ and\nnewline", `(HEADER (BOLD "Header with tag") " and") "newline"`},
		{"#Hello, __world__!", `(HEADER "Hello, " (BOLD "world") "!")`},
		{"#a _b\nc", `(HEADER "a _b") "c"`},
		{"word #header", `"word #header"`},
		{"#", `"#"`},
		{"#\nx", `"#" (BREAK) "x"`},
		{"#a #b", `(HEADER "a #b")`},
		{"#one\n#two\n", `(HEADER "one") (HEADER "two")`},
	})
}

func TestImage(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"![alt](image.jpg)", `(IMAGE alt="alt" src="image.jpg")`},
		{"![alt text](image.jpg)", `(IMAGE alt="alt text" src="image.jpg")`},
		{"see ![a](b) here", `"see " (IMAGE alt="a" src="b") " here"`},
		{"![](b)", `(IMAGE)`},
		{"![a_b_](c)", `(IMAGE alt="a_b_" src="c")`},
		{"__![a](b)__", `(BOLD (IMAGE alt="a" src="b"))`},
		{"![a](b", `"![a](b"`},
		{"a)", `"a)"`},
	})
}

func TestParseTree(t *testing.T) {
	t.Parallel()
	got, err := markup.Parse("#Title\n__a _b_ c__ ![x](y.png)")
	if err != nil {
		t.Fatal(err)
	}
	exp := ast.NodeSlice{
		ast.CreateElementNode(ast.KindHeader, ast.CreateTextNode("Title")),
		ast.CreateElementNode(ast.KindBold,
			ast.CreateTextNode("a "),
			ast.CreateElementNode(ast.KindItalic, ast.CreateTextNode("b")),
			ast.CreateTextNode(" c"),
		),
		ast.CreateTextNode(" "),
		&ast.ElementNode{Kind: ast.KindImage, Attrs: (&ast.Attributes{}).Set("alt", "x").Set("src", "y.png")},
	}
	if diff := cmp.Diff(exp, got, cmp.Comparer(func(a, b *ast.Attributes) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()
	const text = "#заголовок __с жирным текстом__\n" +
		"Просто текст, в котором _курсивные_ выделения\n" +
		"__Есть жирный текст__\n" +
		"__А вот жирный текст _с курсивом_ внутри _и ещё курсив_ в жирном__\n" +
		"_Вот __это_ не__ сработает\n" +
		"_И вот так __тоже__ нет_\n" +
		"Это - _ - просто подчёркивание\n" +
		"Так_ не работает_\n" +
		"И _ вот так _ тоже\n" +
		"В с_лов_е можно выделять, а в цифрах 1_23_ нет\n" +
		"Ещу можно сделать просто _курсив_\n"
	const exp = "<h1>заголовок <strong>с жирным текстом</strong></h1>" +
		"Просто текст, в котором <em>курсивные</em> выделения<br />" +
		"<strong>Есть жирный текст</strong><br />" +
		"<strong>А вот жирный текст <em>с курсивом</em> внутри <em>и ещё курсив</em> в жирном</strong><br />" +
		"_Вот __это_ не__ сработает<br />" +
		"<em>И вот так __тоже__ нет</em><br />" +
		"Это - _ - просто подчёркивание<br />" +
		"Так_ не работает_<br />" +
		"И _ вот так _ тоже<br />" +
		"В с<em>лов</em>е можно выделять, а в цифрах 1_23_ нет<br />" +
		"Ещу можно сделать просто <em>курсив</em><br />"
	if got := renderHTML(t, text); got != exp {
		t.Errorf("\nwant=%q\n got=%q", exp, got)
	}
}

func TestRenderOverlaps(t *testing.T) {
	t.Parallel()
	testCases := []struct{ text, exp string }{
		{"_Вот __это_ не__ сработает\n", "_Вот __это_ не__ сработает<br />"},
		{"_Вот __это _не__ сработает\n", "_Вот __это _не__ сработает<br />"},
		{"__Вот _это __не_ сработает\n", "__Вот _это __не_ сработает<br />"},
		{"__Вот _это __не_ сработает, это - _да_\n", "__Вот _это __не_ сработает, это - <em>да</em><br />"},
		{"__Вот_это__не_сработает\n", "__Вот_это__не_сработает<br />"},
	}
	for _, tc := range testCases {
		if got := renderHTML(t, tc.text); got != tc.exp {
			t.Errorf("%q\nwant=%q\n got=%q", tc.text, tc.exp, got)
		}
	}
}

func renderHTML(t *testing.T, text string) string {
	t.Helper()
	ns, err := parser.Parse(input.NewInput([]byte(text)), "markup", nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := encoder.EncodeString(encoder.Create("html", nil), ns)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{
		"", "__a _b_ c__", "#h\nx", "![a](b)", `\_x\_`, "_a __b_ c__", "![![a](b)](c)",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		if _, err := markup.Parse(src); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	})
}

func TestParseLinear(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	t.Parallel()
	measure := func(src []byte) time.Duration {
		var p markup.Parser
		best := time.Duration(-1)
		for i := 0; i < 3; i++ {
			start := time.Now()
			if _, err := p.Parse(src); err != nil {
				t.Fatal(err)
			}
			if d := time.Since(start); best < 0 || d < best {
				best = d
			}
		}
		return best
	}
	const n = 10000
	for _, unit := range []string{"a_", "a_b ", "w1_", "ab__", "![_", "_a __b_ ", "![a](b)"} {
		small := measure([]byte(strings.Repeat(unit, n)))
		large := measure([]byte(strings.Repeat(unit, 4*n)))
		// Linear growth is a factor of 4, quadratic growth a factor of 16.
		if large > 50*time.Millisecond && large > 10*small {
			t.Errorf("%q: %v for %d units, %v for %d units", unit, small, n, large, 4*n)
		}
	}
}

type traceWriter struct{ lines []string }

func (tw *traceWriter) WriteMessage(_ logger.Level, _ time.Time, _, msg string, details []byte) error {
	tw.lines = append(tw.lines, msg+string(details))
	return nil
}

func TestTraceLog(t *testing.T) {
	t.Parallel()
	tw := &traceWriter{}
	log := logger.New(tw, "").SetLevel(logger.TraceLevel)
	if _, err := markup.New(log).Parse([]byte("__a")); err != nil {
		t.Fatal(err)
	}
	for _, exp := range []string{
		"candidate, line=1, delim=BOLD@0+2",
		"rejected, delim=BOLD@0+2, reason=not closed",
	} {
		found := false
		for _, line := range tw.lines {
			found = found || line == exp
		}
		if !found {
			t.Errorf("%q not logged, got %q", exp, tw.lines)
		}
	}

	tw.lines = nil
	log.SetLevel(logger.DebugLevel)
	if _, err := markup.New(log).Parse([]byte("__a")); err != nil {
		t.Fatal(err)
	}
	if len(tw.lines) != 0 {
		t.Errorf("nothing expected above trace level, got %q", tw.lines)
	}
}

func BenchmarkParseLongLine(b *testing.B) {
	src := []byte(strings.Repeat("a_b __c ", 10000))
	var p markup.Parser
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	line := "#Header __bold _italic_ text__ and ![img](src.png) with \\_escapes\\_ w__1__th\n"
	src := []byte(strings.Repeat(line, 1000))
	var p markup.Parser
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}

// TestVisitor serializes the abstract syntax tree to a string.
type TestVisitor struct{ sb strings.Builder }

func (tv *TestVisitor) String() string { return tv.sb.String() }

func (tv *TestVisitor) Visit(node ast.Node) ast.Visitor {
	if tv.sb.Len() > 0 {
		if s := tv.sb.String(); s[len(s)-1] != '(' {
			tv.sb.WriteByte(' ')
		}
	}
	switch n := node.(type) {
	case *ast.TextNode:
		tv.sb.WriteString(strconv.Quote(n.Text))
	case *ast.ElementNode:
		tv.sb.WriteByte('(')
		tv.sb.WriteString(n.Kind.String())
		for _, p := range n.Attrs.Pairs() {
			tv.sb.WriteString(" " + p.Key + "=" + strconv.Quote(p.Value))
		}
		ast.WalkNodeSlice(tv, n.Children)
		tv.sb.WriteByte(')')
	default:
		return tv
	}
	return nil
}
