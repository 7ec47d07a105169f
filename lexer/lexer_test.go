package lexer

import "testing"

func getTokens(s string) []Token {
	l := New(s)
	go l.Run()

	xs := []Token{}
	for t := range l.Out {
		xs = append(xs, t)
	}
	return xs
}

func assertKinds(t *testing.T, xs []TokenType, ys []Token) {
	t.Helper()
	for i := range xs {
		if i >= len(ys) {
			t.Fatalf("Expected %d tokens but got %d", len(xs), len(ys))
		}
		if xs[i] != ys[i].Kind {
			t.Fatalf("Expected token type %d at position %d but got %d (%s)",
				xs[i], i, ys[i].Kind, ys[i])
		}
	}
	if len(xs) != len(ys) {
		t.Fatalf("Expected %d tokens but got %d", len(xs), len(ys))
	}
}

func TestEmitTokenTypes(t *testing.T) {
	xs := []TokenType{
		TokWord, TokWord, TokPipe, TokWord, TokWord,
		TokWrite, TokWord, TokAppend, TokWord,
		TokRead, TokWord, TokErrWrite, TokWord, TokErrAppend, TokWord,
		TokErrToOut, TokOutToErr,
		TokHeredoc, TokWord, TokHeredocStrip, TokWord, TokHereString, TokWord,
		TokBackground, TokEof,
	}
	s := `echo hello | grep ell ` +
		`>out >>out2 <in 2>err 2>>err2 2>&1 1>&2 ` +
		`<<EOF <<-END <<<word &`

	assertKinds(t, xs, getTokens(s))
}

func TestOperatorsLiteralInsideQuotes(t *testing.T) {
	toks := getTokens(`echo "a | b" '2> c' "<<EOF"`)
	assertKinds(t, []TokenType{TokWord, TokWord, TokWord, TokWord, TokEof}, toks)

	want := []string{"echo", "a | b", "2> c", "<<EOF"}
	for i, w := range want {
		if toks[i].Val != w {
			t.Errorf("Expected word %q at position %d but got %q", w, i, toks[i].Val)
		}
	}
}

func TestQuotedWordGluing(t *testing.T) {
	toks := getTokens(`echo pre"mid"'post'$tail`)
	assertKinds(t, []TokenType{TokWord, TokWord, TokEof}, toks)
	if toks[1].Val != "premidpost$tail" {
		t.Errorf("Glued word came out as %q", toks[1].Val)
	}
}

func TestEmptyQuotedWord(t *testing.T) {
	toks := getTokens(`printf "%s" ""`)
	assertKinds(t, []TokenType{TokWord, TokWord, TokWord, TokEof}, toks)
	if toks[2].Val != "" || !toks[2].Quoted {
		t.Errorf("Expected empty quoted word, got %q (quoted=%v)",
			toks[2].Val, toks[2].Quoted)
	}
}

func TestEscapes(t *testing.T) {
	toks := getTokens(`echo a\|b \<\> "a\"b"`)
	assertKinds(t, []TokenType{TokWord, TokWord, TokWord, TokWord, TokEof}, toks)

	want := []string{"echo", "a|b", "<>", `a"b`}
	for i, w := range want {
		if toks[i].Val != w {
			t.Errorf("Expected word %q at position %d but got %q", w, i, toks[i].Val)
		}
	}
}

func TestKeywords(t *testing.T) {
	toks := getTokens(`if true; quoted "if" survives`)
	// ‘;’ is not an operator in this grammar, so ‘true;’ is one word.
	assertKinds(t, []TokenType{
		TokKeyword, TokWord, TokWord, TokWord, TokWord, TokEof,
	}, toks)
	if toks[3].Val != "if" || toks[3].Kind != TokWord {
		t.Errorf("Quoted keyword should stay a word, got %s", toks[3])
	}
}

func TestLexErrors(t *testing.T) {
	type test struct {
		in, want string
	}
	tests := []test{
		{`echo 'oops`, "Unclosed single quote"},
		{`echo "oops`, "Unclosed double quote"},
		{`echo oops\`, "Trailing backslash"},
	}

	for _, tc := range tests {
		toks := getTokens(tc.in)
		last := toks[len(toks)-1]
		if last.Kind != TokError || last.Val != tc.want {
			t.Errorf("%q: expected error %q but got %s", tc.in, tc.want, last)
		}
	}
}

func TestTokenize(t *testing.T) {
	if _, err := Tokenize(`echo 'oops`); err == nil {
		t.Error("Tokenize accepted an unclosed quote")
	}

	toks, err := Tokenize("echo hi\nheredoc body")
	if err != nil {
		t.Fatalf("Tokenize failed: %s", err)
	}
	assertKinds(t, []TokenType{TokWord, TokWord, TokNewline, TokWord, TokWord, TokEof}, toks)
}
