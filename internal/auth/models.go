package auth

// DiscordLink maps a Discord account to the player it was linked to
// in-game. Rows are created by the game itself; this service only reads
// them, and a Discord callback for an unlinked account fails instead of
// creating one.
type DiscordLink struct {
	DiscordID string
	PlayerID  int64
}
