// Package css parses the small stylesheet dialect used by the overlay UI: `.class` and
// `#id` selectors with `key: value;` declarations. No combinators, no @rules.
package css

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnterminated is returned when a block or comment is never closed.
var ErrUnterminated = errors.New("css: unterminated block")

// Rule is one selector with its raw declarations.
type Rule struct {
	Selector string            // ".panel" or "#close"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is an ordered list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse parses content. Blocks whose selector is not a single class or id are skipped.
func Parse(content string) (*Stylesheet, error) {
	content, err := stripComments(content)
	if err != nil {
		return nil, err
	}
	sheet := &Stylesheet{}
	for {
		content = strings.TrimSpace(content)
		if content == "" {
			return sheet, nil
		}
		head, rest, ok := strings.Cut(content, "{")
		if !ok {
			return nil, fmt.Errorf("css: expected '{' after %q", head)
		}
		body, after, ok := strings.Cut(rest, "}")
		if !ok {
			return nil, ErrUnterminated
		}
		content = after
		selector := strings.TrimSpace(head)
		if !validSelector(selector) {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Props: parseDeclarations(body)})
	}
}

func validSelector(s string) bool {
	if len(s) < 2 || (s[0] != '.' && s[0] != '#') {
		return false
	}
	return !strings.ContainsAny(s, " \t\n>+~,")
}

func stripComments(s string) (string, error) {
	var b strings.Builder
	for {
		before, rest, ok := strings.Cut(s, "/*")
		b.WriteString(before)
		if !ok {
			return b.String(), nil
		}
		_, after, ok := strings.Cut(rest, "*/")
		if !ok {
			return "", ErrUnterminated
		}
		s = after
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

// Resolve merges the properties of every rule matching class or id, in order, and
// computes the style.
func (s *Stylesheet) Resolve(class, id string) Style {
	merged := make(map[string]string)
	if s != nil {
		for _, r := range s.Rules {
			if (class != "" && r.Selector == "."+class) || (id != "" && r.Selector == "#"+id) {
				for k, v := range r.Props {
					merged[k] = v
				}
			}
		}
	}
	return ResolveProps(merged)
}
