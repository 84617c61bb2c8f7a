package outline

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/gaurav-prasanna/tohtml5/core/tree"
)

// Passes selects which rewrites Run applies.
type Passes struct {
	Group     bool
	Section   bool
	Normalize bool
}

// Any reports whether at least one pass is selected.
func (p Passes) Any() bool {
	return p.Group || p.Section || p.Normalize
}

func (p Passes) String() string {
	var names []string
	if p.Group {
		names = append(names, PassGroup)
	}
	if p.Section {
		names = append(names, PassSection)
	}
	if p.Normalize {
		names = append(names, PassNormalize)
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Stats counts the outline structure below a set of roots.
type Stats struct {
	Groups   int `json:"hgroups"`
	Sections int `json:"sections"`
	Headings int `json:"headings"`
}

type pass struct {
	name string
	run  func(*tree.Tree, tree.ID) error
}

// Run applies the selected passes to each root, one pass at a time over all
// roots, in the order Group, Section, Normalize. It stops at the first error.
// A root that is itself a heading or hgroup is replaced by its parent.
func Run(t *tree.Tree, roots []tree.ID, p Passes, log *slog.Logger) (Stats, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	roots = entryParents(t, roots)

	var passes []pass
	if p.Group {
		passes = append(passes, pass{PassGroup, GroupHeadings})
	}
	if p.Section {
		passes = append(passes, pass{PassSection, Sectionise})
	}
	if p.Normalize {
		passes = append(passes, pass{PassNormalize, NormalizeHeadings})
	}

	for _, ps := range passes {
		for _, root := range roots {
			if err := ps.run(t, root); err != nil {
				return Stats{}, err
			}
		}
		log.Debug("pass complete", "pass", ps.name, "roots", len(roots))
	}

	return Count(t, roots...), nil
}

// entryParents lifts outline entries to their parents, dropping duplicates
// and roots nested inside another root.
func entryParents(t *tree.Tree, roots []tree.ID) []tree.ID {
	var lifted []tree.ID
	for _, r := range roots {
		for isOutlineHeading(t, r) && t.Parent(r) != tree.Invalid {
			r = t.Parent(r)
		}
		if !slices.Contains(lifted, r) {
			lifted = append(lifted, r)
		}
	}

	var out []tree.ID
	for _, r := range lifted {
		covered := slices.ContainsFunc(lifted, func(o tree.ID) bool {
			return o != r && t.IsAncestor(o, r)
		})
		if !covered {
			out = append(out, r)
		}
	}
	return out
}

// Count tallies hgroups, sections and headings below the given roots.
func Count(t *tree.Tree, roots ...tree.ID) Stats {
	var stats Stats
	for _, root := range roots {
		stats.Groups += len(t.FindByTag(root, GroupTag))
		stats.Sections += len(t.FindByTag(root, SectionTag))
		stats.Headings += len(t.FindByTag(root, headingTags...))
	}
	return stats
}
