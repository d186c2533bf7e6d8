package bridge

import "strings"

// channelHeaders maps watched Discord channels to the Telegram header line
// readers see above each relayed message.
var channelHeaders = map[string]string{
	"announcements": "📢 *RillCoin Announcement*",
	"dev-updates":   "🔧 *Dev Update*",
}

// Format renders one Discord message for Telegram: a per-channel header,
// then the content with Discord heading lines downgraded to bold, since
// Telegram's Markdown has no heading syntax.
func Format(channel string, content string) string {
	header, ok := channelHeaders[channel]
	if !ok {
		header = "*#" + channel + "*"
	}
	return header + "\n\n" + demoteHeadings(content)
}

func demoteHeadings(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "#")
		if trimmed == line || !strings.HasPrefix(trimmed, " ") {
			continue
		}
		lines[i] = "*" + strings.TrimSpace(trimmed) + "*"
	}
	return strings.Join(lines, "\n")
}
