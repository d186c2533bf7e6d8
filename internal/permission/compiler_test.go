package permission

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rill-community/internal/catalog"
	"rill-community/internal/discord"
)

const everyoneID = "100"

var allRoleIDs = map[string]string{
	"Founder":     "201",
	"Core Team":   "202",
	"Moderator":   "203",
	"Contributor": "204",
	"Member":      "205",
	"Unverified":  "206",
}

func bits(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func TestCompileReadOnly(t *testing.T) {
	got := Compile(catalog.TemplateReadOnly, everyoneID, allRoleIDs)
	require.Len(t, got, 2)

	assert.Equal(t, discord.Overwrite{
		ID:    everyoneID,
		Type:  discord.OverwriteRole,
		Allow: bits(view | history),
		Deny:  bits(send),
	}, got[0])
	assert.Equal(t, discord.Overwrite{
		ID:    "206",
		Type:  discord.OverwriteRole,
		Allow: bits(view | history),
		Deny:  bits(send),
	}, got[1])
}

func TestCompileCommunity(t *testing.T) {
	got := Compile(catalog.TemplateCommunity, everyoneID, allRoleIDs)
	require.Len(t, got, 3)

	assert.Equal(t, everyoneID, got[0].ID)
	assert.Equal(t, "0", got[0].Allow)
	assert.Equal(t, bits(send), got[0].Deny)

	assert.Equal(t, "206", got[1].ID)
	assert.Equal(t, bits(view|send), got[1].Deny)

	assert.Equal(t, "205", got[2].ID)
	assert.Equal(t, bits(view|send|history), got[2].Allow)
	assert.Equal(t, "0", got[2].Deny)
}

func TestCompileGovernance(t *testing.T) {
	got := Compile(catalog.TemplateGovernance, everyoneID, allRoleIDs)
	require.Len(t, got, 4)

	// Members can read but not post; Contributors get full access.
	assert.Equal(t, "205", got[2].ID)
	assert.Equal(t, bits(view|history), got[2].Allow)
	assert.Equal(t, bits(send), got[2].Deny)

	assert.Equal(t, "204", got[3].ID)
	assert.Equal(t, bits(view|send|history), got[3].Allow)
	assert.Equal(t, "0", got[3].Deny)
}

func TestCompileTeamOnly(t *testing.T) {
	got := Compile(catalog.TemplateTeamOnly, everyoneID, allRoleIDs)
	require.Len(t, got, 4)

	assert.Equal(t, everyoneID, got[0].ID)
	assert.Equal(t, bits(view), got[0].Deny)

	for i, wantID := range []string{"201", "202", "203"} {
		assert.Equal(t, wantID, got[i+1].ID)
		assert.Equal(t, bits(view|send|history), got[i+1].Allow)
	}
}

func TestCompileOmitsUnresolvedRoles(t *testing.T) {
	partial := map[string]string{"Member": "205"}

	got := Compile(catalog.TemplateGovernance, everyoneID, partial)
	require.Len(t, got, 2)

	// Unverified and Contributor records are dropped, not emitted empty.
	assert.Equal(t, everyoneID, got[0].ID)
	assert.Equal(t, "205", got[1].ID)
	for _, ow := range got {
		assert.NotEmpty(t, ow.ID)
	}
}

func TestCompileDropsOneMissingRoleAcrossAllTemplates(t *testing.T) {
	tests := []struct {
		template catalog.Template
		missing  string
		wantLen  int
	}{
		{catalog.TemplateReadOnly, "Unverified", 1},
		{catalog.TemplateCommunity, "Member", 2},
		{catalog.TemplateGovernance, "Contributor", 3},
		{catalog.TemplateTeamOnly, "Core Team", 3},
	}

	for _, test := range tests {
		t.Run(string(test.template), func(t *testing.T) {
			roleIDs := make(map[string]string, len(allRoleIDs))
			for name, id := range allRoleIDs {
				if name != test.missing {
					roleIDs[name] = id
				}
			}

			got := Compile(test.template, everyoneID, roleIDs)
			require.Len(t, got, test.wantLen)
			for _, ow := range got {
				assert.NotEmpty(t, ow.ID)
				assert.NotEqual(t, allRoleIDs[test.missing], ow.ID)
			}
		})
	}
}

func TestCompileUnknownTemplate(t *testing.T) {
	assert.Nil(t, Compile(catalog.Template("vip"), everyoneID, allRoleIDs))
}

func TestCompileAllTemplatesTargetRolesOnly(t *testing.T) {
	templates := []catalog.Template{
		catalog.TemplateReadOnly,
		catalog.TemplateCommunity,
		catalog.TemplateGovernance,
		catalog.TemplateTeamOnly,
	}
	for _, tpl := range templates {
		for _, ow := range Compile(tpl, everyoneID, allRoleIDs) {
			assert.Equal(t, discord.OverwriteRole, ow.Type)
		}
	}
}
