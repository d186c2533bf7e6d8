package catalog

// Discord permission bits used by the role definitions and overwrite templates.
const (
	PermCreateInstantInvite    uint64 = 1 << 0
	PermKickMembers            uint64 = 1 << 1
	PermBanMembers             uint64 = 1 << 2
	PermAdministrator          uint64 = 1 << 3
	PermManageChannels         uint64 = 1 << 4
	PermAddReactions           uint64 = 1 << 6
	PermViewAuditLog           uint64 = 1 << 7
	PermViewChannel            uint64 = 1 << 10
	PermSendMessages           uint64 = 1 << 11
	PermManageMessages         uint64 = 1 << 13
	PermEmbedLinks             uint64 = 1 << 14
	PermAttachFiles            uint64 = 1 << 15
	PermReadMessageHistory     uint64 = 1 << 16
	PermMentionEveryone        uint64 = 1 << 17
	PermUseVoice               uint64 = 1 << 21
	PermMuteMembers            uint64 = 1 << 22
	PermDeafenMembers          uint64 = 1 << 23
	PermMoveMembers            uint64 = 1 << 24
	PermManageRoles            uint64 = 1 << 28
	PermUseApplicationCommands uint64 = 1 << 31
	PermManageThreads          uint64 = 1 << 34
	PermTimeoutMembers         uint64 = 1 << 40
)

// StandardMemberPerms is the baseline permission set for regular members.
// Invite creation is deliberately excluded: it is restricted to Moderator+.
const StandardMemberPerms = PermViewChannel |
	PermSendMessages |
	PermEmbedLinks |
	PermAttachFiles |
	PermAddReactions |
	PermReadMessageHistory |
	PermUseApplicationCommands

// CoreTeamPerms adds message/thread management and voice moderation.
// Mentioning @everyone stays restricted to Founder only.
const CoreTeamPerms = StandardMemberPerms |
	PermManageMessages |
	PermManageThreads |
	PermMuteMembers |
	PermDeafenMembers |
	PermMoveMembers

// ModeratorPerms covers community enforcement; the only role besides Founder
// allowed to create invites.
const ModeratorPerms = StandardMemberPerms |
	PermKickMembers |
	PermBanMembers |
	PermManageMessages |
	PermManageThreads |
	PermViewAuditLog |
	PermTimeoutMembers |
	PermMuteMembers |
	PermCreateInstantInvite
