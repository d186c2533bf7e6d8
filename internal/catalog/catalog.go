package catalog

import (
	"rill-community/internal/discord"
)

// PlaceholderToken marks unfinished links in pinned content. It must never
// reach a live channel.
const PlaceholderToken = "URL_PLACEHOLDER"

// Template names a reusable recipe for a channel's permission overwrites.
type Template string

const (
	TemplateReadOnly   Template = "read_only"
	TemplateCommunity  Template = "community"
	TemplateGovernance Template = "governance"
	TemplateTeamOnly   Template = "team_only"
)

// Role is a desired guild role. Slice order encodes hierarchy: index 0 is the
// top of the stack.
type Role struct {
	Name        string
	Color       int
	Hoist       bool
	Mentionable bool
	Permissions uint64
}

// Channel is a desired channel inside a category.
type Channel struct {
	Name     string
	Kind     int
	Topic    string
	Template Template
	// Slowmode is the per-user message interval in seconds (text channels).
	Slowmode int
	// ThreadRateLimit is the per-user thread creation interval in seconds
	// (forum channels). Zero means the engine applies the default.
	ThreadRateLimit int
}

// EffectiveTemplate resolves the channel's template, falling back to the
// parent category's when unset.
func (ch Channel) EffectiveTemplate(parent Category) Template {
	if ch.Template == "" {
		return parent.Template
	}
	return ch.Template
}

// Category is a top-level grouping of channels. Order defines creation order.
type Category struct {
	Name     string
	Template Template
	Channels []Channel
}

// Catalog is the immutable desired state of the whole server: role hierarchy,
// category/channel tree, and the content to pin. It carries no behaviour
// beyond lookups; the provisioning engine interprets it.
type Catalog struct {
	Roles     []Role
	Structure []Category
	Pins      map[string][]string
}

// Default returns the RillCoin server topology.
func Default() Catalog {
	return Catalog{
		Roles:     defaultRoles(),
		Structure: defaultStructure(),
		Pins:      defaultPins(),
	}
}

// ChannelKind reports the declared kind of a named channel.
func (c Catalog) ChannelKind(name string) (int, bool) {
	for _, cat := range c.Structure {
		for _, ch := range cat.Channels {
			if ch.Name == name {
				return ch.Kind, true
			}
		}
	}
	return 0, false
}

// FeedChannels returns the bot-feed channel definitions the incremental
// add variant provisions into the BOTS category.
func (c Catalog) FeedChannels() []Channel {
	names := []string{"crypto-news", "price-ticker", "regulatory-watch", "whale-alerts"}
	var out []Channel
	for _, cat := range c.Structure {
		for _, ch := range cat.Channels {
			for _, name := range names {
				if ch.Name == name {
					out = append(out, ch)
				}
			}
		}
	}
	return out
}

func defaultRoles() []Role {
	return []Role{
		{Name: "Founder", Color: 0xF97316, Hoist: true, Permissions: PermAdministrator},
		{Name: "Core Team", Color: 0x3B82F6, Hoist: true, Permissions: CoreTeamPerms},
		{Name: "Moderator", Color: 0x2A5A8C, Hoist: true, Permissions: ModeratorPerms},
		{Name: "Contributor", Color: 0x4A8AF4, Hoist: true, Permissions: StandardMemberPerms},
		{Name: "Testnet Participant", Color: 0x5DE0F2, Hoist: true, Permissions: StandardMemberPerms},
		// Amber, kept distinct from the Founder orange.
		{Name: "Bug Hunter", Color: 0xD97706, Permissions: StandardMemberPerms},
		{Name: "Ambassador", Color: 0x3B82F6, Permissions: StandardMemberPerms},
		{Name: "Member", Permissions: StandardMemberPerms},
		{Name: "Unverified", Permissions: PermViewChannel | PermReadMessageHistory},
		// Opt-in notification roles. None are mentionable: only Core Team and
		// Moderator ping them, through role mention permissions.
		{Name: "Announcements Ping", Permissions: StandardMemberPerms},
		{Name: "Testnet Ping", Permissions: StandardMemberPerms},
		{Name: "Dev Updates Ping", Permissions: StandardMemberPerms},
		{Name: "AMA Ping", Permissions: StandardMemberPerms},
		{Name: "Governance Ping", Permissions: StandardMemberPerms},
	}
}

func defaultStructure() []Category {
	return []Category{
		{
			Name:     "START HERE",
			Template: TemplateReadOnly,
			Channels: []Channel{
				{Name: "welcome", Kind: discord.ChannelTypeText,
					Topic: "Learn what RillCoin is and how to get started in this server."},
				{Name: "rules", Kind: discord.ChannelTypeText,
					Topic: "Community standards and moderation policy. Read before posting."},
				{Name: "roles-and-verification", Kind: discord.ChannelTypeText,
					Topic: "Verify your account to unlock the server. Learn how roles are earned."},
				{Name: "faq", Kind: discord.ChannelTypeText,
					Topic: "Common questions about concentration decay, the testnet, wallets, and the roadmap."},
			},
		},
		{
			Name:     "ANNOUNCEMENTS",
			Template: TemplateReadOnly,
			Channels: []Channel{
				{Name: "announcements", Kind: discord.ChannelTypeAnnouncement,
					Topic: "Major releases, milestones, and protocol updates from the Core Team."},
				{Name: "dev-updates", Kind: discord.ChannelTypeAnnouncement,
					Topic: "Technical progress notes from developers. Shipped code, not speculation."},
				{Name: "testnet-status", Kind: discord.ChannelTypeText,
					Topic: "Live testnet health: block height, peer count, last decay event."},
			},
		},
		{
			Name:     "COMMUNITY",
			Template: TemplateCommunity,
			Channels: []Channel{
				{Name: "general", Kind: discord.ChannelTypeText, Slowmode: 3,
					Topic: "Open discussion about RillCoin. The main gathering channel."},
				{Name: "introductions", Kind: discord.ChannelTypeForum, ThreadRateLimit: 60,
					Topic: "New here? Start a thread and tell us what brought you to the project."},
				{Name: "price-and-markets", Kind: discord.ChannelTypeText, Slowmode: 30,
					Topic: "Market discussion only. No financial advice, no predictions, no coordination."},
				{Name: "off-topic", Kind: discord.ChannelTypeText, Slowmode: 5,
					Topic: "Everything unrelated to RillCoin. Tech, culture, whatever flows."},
				{Name: "memes", Kind: discord.ChannelTypeText,
					Topic: "Community art and humor. Keep it related to Rill themes."},
			},
		},
		{
			Name:     "TECHNICAL",
			Template: TemplateCommunity,
			Channels: []Channel{
				{Name: "protocol", Kind: discord.ChannelTypeText, Slowmode: 5,
					Topic: "Decay mechanics, consensus rules, fee structure, and proof-of-work design."},
				{Name: "development", Kind: discord.ChannelTypeText, Slowmode: 3,
					Topic: "Codebase discussion, contribution questions, and architecture decisions."},
				{Name: "research", Kind: discord.ChannelTypeForum, ThreadRateLimit: 300,
					Topic: "Longer-form technical analysis, external papers, and economic modeling."},
				{Name: "node-operators", Kind: discord.ChannelTypeText, Slowmode: 5,
					Topic: "Running a node or mining. Configuration, sync issues, hardware discussion."},
			},
		},
		{
			Name:     "TESTNET",
			Template: TemplateCommunity,
			Channels: []Channel{
				{Name: "testnet-general", Kind: discord.ChannelTypeText, Slowmode: 5,
					Topic: "General testnet discussion, questions, and coordination."},
				{Name: "bug-reports", Kind: discord.ChannelTypeForum, ThreadRateLimit: 300,
					Topic: "Structured bug reports only. Use the pinned template. Each report becomes a thread."},
				{Name: "testnet-wallets", Kind: discord.ChannelTypeText, Slowmode: 10,
					Topic: "Share testnet wallet addresses for testing. Mainnet addresses are not permitted here."},
				{Name: "faucet", Kind: discord.ChannelTypeText, Slowmode: 10,
					Topic: "Request testnet coins with /faucet. One request per user per 24 hours."},
			},
		},
		{
			Name:     "GOVERNANCE",
			Template: TemplateCommunity,
			Channels: []Channel{
				{Name: "governance-general", Kind: discord.ChannelTypeText, Template: TemplateGovernance, Slowmode: 10,
					Topic: "Discussion of governance process, philosophy, and community direction."},
				{Name: "proposals", Kind: discord.ChannelTypeForum, Template: TemplateGovernance, ThreadRateLimit: 300,
					Topic: "Formal improvement proposals. Use the structured format: title, summary, motivation, specification."},
				{Name: "voting", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Governance vote results and links. Active when on-chain voting launches."},
			},
		},
		{
			Name:     "SUPPORT",
			Template: TemplateCommunity,
			Channels: []Channel{
				{Name: "support-general", Kind: discord.ChannelTypeText, Slowmode: 5,
					Topic: "Public support for wallet setup, sync issues, and decay calculation questions."},
				{Name: "create-ticket", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Open a private support ticket with the team. Click the button below to start."},
			},
		},
		{
			Name:     "TEAM",
			Template: TemplateTeamOnly,
			Channels: []Channel{
				{Name: "team-general", Kind: discord.ChannelTypeText,
					Topic: "Day-to-day coordination."},
				{Name: "mod-log", Kind: discord.ChannelTypeText,
					Topic: "Automated moderation action log."},
				{Name: "incident-response", Kind: discord.ChannelTypeText,
					Topic: "Active incident handling."},
				{Name: "community-feedback", Kind: discord.ChannelTypeText,
					Topic: "Digested community feedback for the dev team."},
			},
		},
		{
			Name:     "BOTS",
			Template: TemplateCommunity,
			Channels: []Channel{
				{Name: "bot-commands", Kind: discord.ChannelTypeText,
					Topic: "Run bot commands here. Keeps other channels clean."},
				{Name: "github-feed", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Automated commits, pull requests, and releases from the RillCoin repository."},
				{Name: "twitter-feed", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Automated feed of posts from @RillCoin on X."},
				{Name: "crypto-news", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Aggregated crypto industry news from curated RSS sources. Powered by MonitoRSS."},
				{Name: "price-ticker", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Auto-updating price data for BTC, ETH, and top 20 by market cap. Powered by CoinGecko Bot."},
				{Name: "regulatory-watch", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Crypto regulation and legal news from SEC, CFTC, and industry sources. Powered by MonitoRSS."},
				{Name: "whale-alerts", Kind: discord.ChannelTypeText, Template: TemplateReadOnly,
					Topic: "Large transaction alerts on major chains. Powered by Whale Alert Bot."},
			},
		},
	}
}
