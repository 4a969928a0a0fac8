package css

import (
	"bytes"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ruleGroup is a "selector { declarations }" group found in a block of CSS
// text, both parts are kept verbatim.
type ruleGroup struct {
	selector     string
	declarations string
}

// splitGroups extracts top level rule groups from CSS text. Comments are
// dropped, at-rules (and everything nested in them) are skipped.
func splitGroups(text string, log *zap.Logger) []ruleGroup {
	var (
		groups   []ruleGroup
		selector strings.Builder
		body     strings.Builder
		depth    int
		atRule   bool
	)

	lexer := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(text))))
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				log.Debug("CSS block lexer error", zap.Error(err))
			}
			if depth > 0 {
				log.Debug("Unterminated CSS block ignored", zap.String("selector", strings.TrimSpace(selector.String())))
			}
			return groups

		case css.CommentToken:
			continue

		case css.AtKeywordToken:
			if depth == 0 {
				atRule = true
			}

		case css.LeftBraceToken:
			depth++
			if depth == 1 {
				continue
			}

		case css.RightBraceToken:
			if depth == 0 {
				// stray brace, start over
				selector.Reset()
				continue
			}
			depth--
			if depth > 0 {
				break
			}
			if atRule {
				log.Debug("Skipping at-rule in CSS block", zap.String("rule", strings.TrimSpace(selector.String())))
			} else if sel := strings.TrimSpace(selector.String()); sel != "" {
				groups = append(groups, ruleGroup{selector: sel, declarations: strings.TrimSpace(body.String())})
			}
			selector.Reset()
			body.Reset()
			atRule = false
			continue

		case css.SemicolonToken:
			if depth == 0 {
				// statement at-rule (@import, @charset) or garbage
				if atRule {
					log.Debug("Skipping at-rule in CSS block", zap.String("rule", strings.TrimSpace(selector.String())))
				}
				selector.Reset()
				atRule = false
				continue
			}
		}

		if depth == 0 {
			selector.Write(data)
		} else {
			body.Write(data)
		}
	}
}
