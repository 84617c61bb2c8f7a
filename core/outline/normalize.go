package outline

import (
	"fmt"

	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// NormalizeHeadings promotes every outline entry to the top rank. A bare
// heading becomes h1. The headings of an hgroup are shifted together so the
// group's most significant heading becomes h1 and the others keep their
// relative ranks.
func NormalizeHeadings(t *tree.Tree, root tree.ID) error {
	top := rankTags[MaxRank]
	for _, h := range Headings(t, root) {
		if t.Tag(h) != GroupTag {
			t.SetTag(h, top)
			continue
		}
		if err := shiftGroup(t, h); err != nil {
			return &PassError{Pass: PassNormalize, Tag: GroupTag, Err: err}
		}
	}
	return nil
}

// shiftGroup validates every new tag before it re-tags anything.
func shiftGroup(t *tree.Tree, group tree.ID) error {
	best, err := EffectiveRank(t, group)
	if err != nil {
		return err
	}
	increase := MaxRank - best

	members := groupHeadings(t, group)
	tags := make([]string, len(members))
	for i, h := range members {
		rank, err := RankOf(t.Tag(h))
		if err != nil {
			return err
		}
		if rank+increase > MaxRank {
			return fmt.Errorf("%w: <%s> shifted by %d", ErrRankOverflow, t.Tag(h), increase)
		}
		if tags[i], err = TagOf(rank + increase); err != nil {
			return err
		}
	}

	for i, h := range members {
		t.SetTag(h, tags[i])
	}
	return nil
}
