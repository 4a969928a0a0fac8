// Package minify removes comments and insignificant whitespace from CSS text.
//
// It works on the token stream of the tdewolff CSS lexer and never rewrites
// values, so output is always equivalent to input: whitespace is collapsed
// to a single space and dropped entirely next to braces, semicolons, commas
// and around the colon separating property from value. Colons in selectors
// keep their spacing since a descendant ":hover" differs from an attached
// one. The last semicolon of a block is removed.
package minify

import (
	"bytes"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Minifier is stateless and may be shared.
type Minifier struct {
	log *zap.Logger
}

// New creates minifier.
func New(log *zap.Logger) *Minifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Minifier{log: log.Named("minify")}
}

type token struct {
	tt   css.TokenType
	data []byte
}

// Minify returns minified text, on lexer error input is returned unchanged.
func (m *Minifier) Minify(text string) string {
	tokens, err := tokenize(text)
	if err != nil {
		m.log.Debug("Unable to minify CSS, leaving as is", zap.Error(err))
		return text
	}
	props := propertyColons(tokens)

	var (
		out          strings.Builder
		pendingSpace bool
		pendingSemi  bool
		prev         = -1
	)
	for i, t := range tokens {
		switch t.tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			pendingSpace = true
			continue
		case css.SemicolonToken:
			// postpone, may be dropped before closing brace
			pendingSemi = true
			pendingSpace = false
			prev = i
			continue
		}

		if pendingSemi && t.tt != css.RightBraceToken {
			out.WriteByte(';')
		}
		if pendingSpace && prev >= 0 && needSpace(tokens[prev].tt, t.tt, props[prev] || props[i]) {
			out.WriteByte(' ')
		}
		pendingSpace, pendingSemi = false, false
		out.Write(t.data)
		prev = i
	}
	if pendingSemi {
		out.WriteByte(';')
	}
	return out.String()
}

func tokenize(text string) ([]token, error) {
	var tokens []token
	lexer := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(text))))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			return tokens, nil
		}
		tokens = append(tokens, token{tt: tt, data: bytes.Clone(data)})
	}
}

// propertyColons marks colons which separate property name from value. A
// statement inside a block is a declaration when it starts with an
// identifier followed by a colon and ends with semicolon or closing brace
// rather than opening a nested block.
func propertyColons(tokens []token) []bool {
	props := make([]bool, len(tokens))
	depth, start := 0, true
	for i, t := range tokens {
		switch t.tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.LeftBraceToken:
			depth++
			start = true
			continue
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
			start = true
			continue
		case css.SemicolonToken:
			start = true
			continue
		}
		if !start {
			continue
		}
		start = false
		if depth == 0 || (t.tt != css.IdentToken && t.tt != css.CustomPropertyNameToken) {
			continue
		}
		c := nextSignificant(tokens, i+1)
		if c < 0 || tokens[c].tt != css.ColonToken {
			continue
		}
		props[c] = endsDeclaration(tokens, c+1)
	}
	return props
}

func nextSignificant(tokens []token, from int) int {
	for j := from; j < len(tokens); j++ {
		if tt := tokens[j].tt; tt != css.WhitespaceToken && tt != css.CommentToken {
			return j
		}
	}
	return -1
}

func endsDeclaration(tokens []token, from int) bool {
	for j := from; j < len(tokens); j++ {
		switch tokens[j].tt {
		case css.LeftBraceToken:
			return false
		case css.SemicolonToken, css.RightBraceToken:
			return true
		}
	}
	return true
}

func isPunct(tt css.TokenType) bool {
	switch tt {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.CommaToken:
		return true
	}
	return false
}

// needSpace decides if whitespace between prev and next tokens is significant.
func needSpace(prev, next css.TokenType, propertyColon bool) bool {
	if isPunct(prev) || isPunct(next) {
		return false
	}
	return !propertyColon
}
