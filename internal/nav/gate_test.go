package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

func sessionWith(permissions ...string) *domain.Session {
	return &domain.Session{
		User: &domain.Identity{
			ID:          "adm-1",
			Role:        domain.RoleAdmin,
			Permissions: permissions,
		},
		AccessToken: "token",
	}
}

func labels(sections []Section) map[string][]string {
	out := make(map[string][]string, len(sections))
	for _, section := range sections {
		names := make([]string, 0, len(section.Entries))
		for _, entry := range section.Entries {
			names = append(names, entry.Label)
		}
		out[section.Name] = names
	}
	return out
}

func TestVisibleSectionsUserManagerOnly(t *testing.T) {
	visible := labels(VisibleSections(sessionWith("manage_users")))

	assert.Equal(t, []string{"Overview", "Users", "Verify"}, visible["Main"])
	assert.Equal(t, []string{"Connections", "Tasks"}, visible["Management"])

	// System only holds the settings entry, which this session cannot see,
	// so the whole section is dropped.
	_, ok := visible["System"]
	assert.False(t, ok)
}

func TestVisibleSectionsUngatedOnly(t *testing.T) {
	sections := VisibleSections(sessionWith())
	require.Len(t, sections, 1)
	assert.Equal(t, "Main", sections[0].Name)
	require.Len(t, sections[0].Entries, 1)
	assert.Equal(t, "Overview", sections[0].Entries[0].Label)
}

func TestVisibleSectionsInactiveSession(t *testing.T) {
	assert.Empty(t, VisibleSections(&domain.Session{}))
	assert.Empty(t, VisibleSections(nil))
}

func TestVisibleSectionsFullAccess(t *testing.T) {
	session := sessionWith(
		"manage_users", "manage_admins", "manage_content",
		"view_logs", "manage_finance", "manage_settings",
	)
	visible := labels(VisibleSections(session))

	catalog := labels(Catalog())
	assert.Equal(t, catalog, visible)
}

func TestVisibleGrantingMorePermissionsNeverHidesEntries(t *testing.T) {
	narrow := VisibleSections(sessionWith("view_logs"))
	wide := VisibleSections(sessionWith("view_logs", "manage_content"))

	seen := make(map[string]bool)
	for _, section := range wide {
		for _, entry := range section.Entries {
			seen[entry.Route] = true
		}
	}
	for _, section := range narrow {
		for _, entry := range section.Entries {
			assert.True(t, seen[entry.Route], "entry %s disappeared with wider grants", entry.Route)
		}
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	entries := Catalog()[0].Entries
	session := sessionWith("manage_users", "view_logs", "manage_content")

	var got []string
	for entry := range Visible(session, entries) {
		got = append(got, entry.Label)
	}
	assert.Equal(t, []string{"Overview", "Users", "Verify", "Analytics", "Broadcast", "Reports"}, got)
}

func TestVisibleIsRestartable(t *testing.T) {
	entries := Catalog()[0].Entries
	session := sessionWith("manage_users")
	seq := Visible(session, entries)

	collect := func() []string {
		var out []string
		for entry := range seq {
			out = append(out, entry.Route)
		}
		return out
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
}

func TestVisibleReEvaluatesOnEachPass(t *testing.T) {
	entries := Catalog()[0].Entries
	session := sessionWith("manage_users")
	seq := Visible(session, entries)

	var before []string
	for entry := range seq {
		before = append(before, entry.Label)
	}
	assert.Contains(t, before, "Users")

	session.User.Permissions = nil

	var after []string
	for entry := range seq {
		after = append(after, entry.Label)
	}
	assert.Equal(t, []string{"Overview"}, after)
}
