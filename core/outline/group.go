package outline

import (
	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// GroupHeadings wraps runs of adjacent headings in <hgroup> elements.
//
// For each heading below root, in the document order found when the pass
// starts:
//
//  1. Skip it if it already sits inside an hgroup.
//  2. Insert a new hgroup at the heading's position and move the heading in.
//  3. Move following siblings into the group while they are headings or
//     carry no content (line breaks, empty elements, comments).
//  4. If the group ends up with fewer than two children, put them back
//     where the group stands and drop the group.
func GroupHeadings(t *tree.Tree, root tree.ID) error {
	for _, heading := range t.FindByTag(root, headingTags...) {
		if t.ClosestAncestor(heading, GroupTag) != tree.Invalid {
			continue
		}
		if err := groupFrom(t, heading); err != nil {
			return &PassError{Pass: PassGroup, Tag: t.Tag(heading), Err: err}
		}
	}
	return nil
}

func groupFrom(t *tree.Tree, heading tree.ID) error {
	parent := t.Parent(heading)
	group := t.NewElement(GroupTag)
	if err := t.InsertAt(parent, t.Index(heading), group); err != nil {
		return err
	}
	if err := t.Append(group, heading); err != nil {
		return err
	}

	for _, following := range t.NextSiblings(group) {
		if !IsHeading(t.Tag(following)) && HasContent(t, following) {
			break
		}
		if err := t.Append(group, following); err != nil {
			return err
		}
	}

	if t.ChildCount(group) >= 2 {
		return nil
	}
	return unwrap(t, group)
}

// unwrap replaces el with its children, in order.
func unwrap(t *tree.Tree, el tree.ID) error {
	parent := t.Parent(el)
	at := t.Index(el)
	for i, child := range t.Children(el) {
		if err := t.InsertAt(parent, at+1+i, child); err != nil {
			return err
		}
	}
	t.Detach(el)
	return nil
}
