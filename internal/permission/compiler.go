// Package permission compiles channel permission templates into the concrete
// overwrite lists the Discord API expects.
package permission

import (
	"strconv"

	"rill-community/internal/catalog"
	"rill-community/internal/discord"
)

const (
	view    = catalog.PermViewChannel
	send    = catalog.PermSendMessages
	history = catalog.PermReadMessageHistory
)

// rule describes one overwrite record of a template. An empty Role targets the
// @everyone role.
type rule struct {
	Role  string
	Allow uint64
	Deny  uint64
}

// templateRules maps each template to its overwrite records, in the order they
// are emitted. Records for roles that do not exist on the guild are dropped at
// compile time.
var templateRules = map[catalog.Template][]rule{
	catalog.TemplateReadOnly: {
		{Allow: view | history, Deny: send},
		{Role: "Unverified", Allow: view | history, Deny: send},
	},
	catalog.TemplateCommunity: {
		{Deny: send},
		{Role: "Unverified", Deny: view | send},
		{Role: "Member", Allow: view | send | history},
	},
	catalog.TemplateGovernance: {
		{Deny: send},
		{Role: "Unverified", Deny: view | send},
		{Role: "Member", Allow: view | history, Deny: send},
		{Role: "Contributor", Allow: view | send | history},
	},
	catalog.TemplateTeamOnly: {
		{Deny: view},
		{Role: "Founder", Allow: view | send | history},
		{Role: "Core Team", Allow: view | send | history},
		{Role: "Moderator", Allow: view | send | history},
	},
}

// Compile resolves template into permission overwrites for a channel.
// everyoneID is the guild's @everyone role ID (equal to the guild ID), and
// roleIDs maps role names to their live IDs. Records whose role name has no
// live ID are omitted rather than sent with an empty target.
func Compile(template catalog.Template, everyoneID string, roleIDs map[string]string) []discord.Overwrite {
	rules, ok := templateRules[template]
	if !ok {
		return nil
	}

	overwrites := make([]discord.Overwrite, 0, len(rules))
	for _, r := range rules {
		id := everyoneID
		if r.Role != "" {
			id = roleIDs[r.Role]
			if id == "" {
				continue
			}
		}
		overwrites = append(overwrites, discord.Overwrite{
			ID:    id,
			Type:  discord.OverwriteRole,
			Allow: strconv.FormatUint(r.Allow, 10),
			Deny:  strconv.FormatUint(r.Deny, 10),
		})
	}
	return overwrites
}
