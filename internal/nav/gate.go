package nav

import (
	"iter"

	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

// Visible yields the entries the session may see, preserving input order. The
// sequence is restartable and re-evaluates permissions on each iteration.
// Visibility is advisory: it controls links, not authorization, which remains
// with the upstream API and the route capability checks.
func Visible(session *domain.Session, entries []Entry) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, entry := range entries {
			if !auth.HasPermission(session, entry.Requires) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// VisibleSections filters the catalog for the session. A section whose
// entries all filtered out is omitted entirely.
func VisibleSections(session *domain.Session) []Section {
	return filterSections(session, Catalog())
}

func filterSections(session *domain.Session, sections []Section) []Section {
	visible := make([]Section, 0, len(sections))
	for _, section := range sections {
		entries := make([]Entry, 0, len(section.Entries))
		for entry := range Visible(session, section.Entries) {
			entries = append(entries, entry)
		}
		if len(entries) == 0 {
			continue
		}
		visible = append(visible, Section{Name: section.Name, Entries: entries})
	}
	return visible
}
