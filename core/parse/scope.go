package parse

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

var (
	// ErrInvalidSelector is returned when a scope selector does not compile.
	ErrInvalidSelector = errors.New("invalid scope selector")

	// ErrScopeNoMatch is returned when a scope selector matches nothing.
	ErrScopeNoMatch = errors.New("scope selector matched no elements")
)

// Scope returns the roots the outline passes should run on. An empty selector
// scopes the whole document. Otherwise the CSS selector is matched against
// the document as parsed, and the outermost matches are returned in document
// order; matches nested inside another match are covered by it.
// Matching runs against the DOM as parsed, so rewrites of the tree do not
// change what a selector selects.
func (d *Document) Scope(selector string) ([]tree.ID, error) {
	if selector == "" {
		return []tree.ID{d.Tree.Root()}, nil
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}

	var matched []tree.ID
	d.dom.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
		if id, ok := d.ids[s.Get(0)]; ok {
			matched = append(matched, id)
		}
	})

	var roots []tree.ID
	for _, id := range matched {
		if !coveredBy(d.Tree, id, matched) {
			roots = append(roots, id)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrScopeNoMatch, selector)
	}
	return roots, nil
}

func coveredBy(t *tree.Tree, id tree.ID, others []tree.ID) bool {
	for _, o := range others {
		if o != id && t.IsAncestor(o, id) {
			return true
		}
	}
	return false
}
