// Package outline implements the heading-driven rewrites of a document tree:
// grouping adjacent headings into <hgroup>, wrapping headings and their
// subordinate content in nested <section> elements, and normalizing heading
// ranks. The passes mutate the tree in place and are meant to run in the
// order Group, Section, Normalize.
package outline

import (
	"fmt"

	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// Ranks run from MinRank (h6) to MaxRank (h1); higher is more significant.
const (
	MinRank = 1
	MaxRank = 6
)

const (
	GroupTag   = "hgroup"
	SectionTag = "section"
)

// headingTags lists the heading tags from most to least significant.
var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

var headingRanks = map[string]int{
	"h1": 6,
	"h2": 5,
	"h3": 4,
	"h4": 3,
	"h5": 2,
	"h6": 1,
}

// rankTags is indexed by rank.
var rankTags = [MaxRank + 1]string{"", "h6", "h5", "h4", "h3", "h2", "h1"}

// IsHeading reports whether tag is one of h1-h6.
func IsHeading(tag string) bool {
	_, ok := headingRanks[tag]
	return ok
}

// RankOf maps a heading tag to its rank.
func RankOf(tag string) (int, error) {
	rank, ok := headingRanks[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeadingTag, tag)
	}
	return rank, nil
}

// TagOf maps a rank to its heading tag.
func TagOf(rank int) (string, error) {
	if rank < MinRank || rank > MaxRank {
		return "", fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return rankTags[rank], nil
}

// EffectiveRank is the rank of a heading, or for an hgroup the highest rank
// among its direct heading children.
func EffectiveRank(t *tree.Tree, id tree.ID) (int, error) {
	tag := t.Tag(id)
	if tag != GroupTag {
		return RankOf(tag)
	}
	best := 0
	for _, h := range groupHeadings(t, id) {
		best = max(best, headingRanks[t.Tag(h)])
	}
	if best == 0 {
		return 0, ErrEmptyHeadingGroup
	}
	return best, nil
}

// groupHeadings returns the direct heading children of group.
func groupHeadings(t *tree.Tree, group tree.ID) []tree.ID {
	var out []tree.ID
	for _, c := range t.Children(group) {
		if IsHeading(t.Tag(c)) {
			out = append(out, c)
		}
	}
	return out
}

// isOutlineHeading reports whether id opens an outline entry: a heading or an hgroup.
func isOutlineHeading(t *tree.Tree, id tree.ID) bool {
	tag := t.Tag(id)
	return tag == GroupTag || IsHeading(tag)
}

// Headings returns the outline entries below root in document order: every
// heading, with headings inside an hgroup replaced by their outermost hgroup,
// each entry listed once.
func Headings(t *tree.Tree, root tree.ID) []tree.ID {
	seen := make(map[tree.ID]bool)
	var out []tree.ID
	for _, h := range t.FindByTag(root, headingTags...) {
		if g := t.OutermostAncestor(h, GroupTag); g != tree.Invalid {
			h = g
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
