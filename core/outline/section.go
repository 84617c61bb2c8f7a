package outline

import (
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// Sectionise wraps each outline entry (heading or hgroup) and the content
// subordinate to it in a <section>.
//
// Entries are taken in document order. Entries that were already inside a
// section when the pass started are left alone, which makes the pass
// idempotent. For each remaining entry a section is inserted at its position,
// the entry is moved in, and following siblings are moved in until one is a
// heading or hgroup of equal or higher rank. Lower-ranked entries swept in
// this way are wrapped in turn when the loop reaches them, nesting their
// sections inside the outer one.
func Sectionise(t *tree.Tree, root tree.ID) error {
	var pending []tree.ID
	for _, h := range Headings(t, root) {
		if t.ClosestAncestor(h, SectionTag) == tree.Invalid {
			pending = append(pending, h)
		}
	}

	for _, h := range pending {
		if err := sectionFrom(t, h); err != nil {
			return &PassError{Pass: PassSection, Tag: t.Tag(h), Err: err}
		}
	}
	return nil
}

func sectionFrom(t *tree.Tree, heading tree.ID) error {
	value, err := EffectiveRank(t, heading)
	if err != nil {
		return err
	}

	parent := t.Parent(heading)
	section := t.NewElement(SectionTag)
	if err := t.InsertAt(parent, t.Index(heading), section); err != nil {
		return err
	}
	if err := t.Append(section, heading); err != nil {
		return err
	}

	for _, following := range t.NextSiblings(section) {
		if isOutlineHeading(t, following) {
			val, err := EffectiveRank(t, following)
			if err != nil {
				return err
			}
			if val >= value {
				break
			}
		}
		if err := t.Append(section, following); err != nil {
			return err
		}
	}
	return nil
}
