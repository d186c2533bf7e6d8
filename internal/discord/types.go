package discord

// Channel type discriminants as defined by the Discord API.
const (
	ChannelTypeText         = 0
	ChannelTypeVoice        = 2
	ChannelTypeCategory     = 4
	ChannelTypeAnnouncement = 5
	ChannelTypeForum        = 15
)

// Permission overwrite target kinds.
const (
	OverwriteRole   = 0
	OverwriteMember = 1
)

// Overwrite is a per-role or per-member allow/deny bitmask attached to a
// channel or category. Bitmasks travel as decimal strings on the wire.
type Overwrite struct {
	ID    string `json:"id"`
	Type  int    `json:"type"`
	Allow string `json:"allow"`
	Deny  string `json:"deny"`
}

type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Position    int    `json:"position"`
	Permissions string `json:"permissions"`
	Mentionable bool   `json:"mentionable"`
}

type Channel struct {
	ID       string `json:"id"`
	Type     int    `json:"type"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Topic    string `json:"topic,omitempty"`
}

type User struct {
	ID  string `json:"id"`
	Bot bool   `json:"bot"`
}

type Message struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  User   `json:"author"`
}

// RoleCreate is the payload for POST /guilds/{id}/roles.
type RoleCreate struct {
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Mentionable bool   `json:"mentionable"`
	Permissions string `json:"permissions"`
}

// RolePosition is one entry of the bulk role re-order payload.
type RolePosition struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// ChannelCreate is the payload for POST /guilds/{id}/channels.
type ChannelCreate struct {
	Name                 string      `json:"name"`
	Type                 int         `json:"type"`
	ParentID             string      `json:"parent_id,omitempty"`
	Topic                string      `json:"topic,omitempty"`
	PermissionOverwrites []Overwrite `json:"permission_overwrites,omitempty"`
	// Slow mode: seconds a user must wait between messages.
	RateLimitPerUser int `json:"rate_limit_per_user,omitempty"`
	// Forum channels only: seconds between thread creations.
	DefaultThreadRateLimitPerUser int `json:"default_thread_rate_limit_per_user,omitempty"`
}

// MessageCreate is the payload for POST /channels/{id}/messages.
type MessageCreate struct {
	Content string `json:"content"`
}
