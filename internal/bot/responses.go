package bot

import (
	"fmt"
	"strings"

	"github.com/nahidff/likebot/internal/model"
)

// User-facing reply text. The wording (and emoji) is part of the bot's
// surface and is kept stable; handlers only fill in the dynamic parts.

const helpText = `
🎮 MAIN COMMANDS:
╰┈➤ /start - Start the bot
╰┈➤ /help - Show this help
╰┈➤ /coins - Check your coins

💎 VIP SERVICES:
╰┈➤ /like <region> <uid> - Send likes
╰┈➤ /visit <region> <uid> - Send visits
╰┈➤ /leaderboard <region> <mode> - Show leaderboard (br/cs)
╰┈➤ /bp_leaderboard - Show Booyah Pass leaderboard

🌐 REGION CODES:
╰┈➤ bd - Bangladesh
╰┈➤ ind - Indonesia
╰┈➤ br - Brazil
╰┈➤ pk - Pakistan

🎮 MODE CODES:
╰┈➤ br - Battle Royale
╰┈➤ cs - Clash Squad

🔐 VERIFICATION SYSTEM:
1. Join required channels
2. Use /like or /visit
3. Complete verification
4. Earn 1 free credit

💰 COIN SYSTEM:
╰┈➤ Earn coins via verification
╰┈➤ Spend coins for services
╰┈➤ Check with /coins

🔮 BECOME VIP:
╰┈➤ Contact @AdminUser
╰┈➤ Get unlimited access

📢 SUPPORT:
╰┈➤ Channel: @FreeFireUpdates
╰┈➤ Group: @FreeFireCommunity
╰┈➤ Owner: @AdminUser
`

const (
	msgInvalidRegion = "Invalid region code. Use /help to see valid regions."
	msgInvalidMode   = "Invalid mode. Use 'br' for Battle Royale or 'cs' for Clash Squad."

	msgNeedCoins = "You need 1 coin to use this service or VIP status. Earn coins by completing verification."
	msgNeedVerification = "You need to complete verification first. Join our channels and try again."

	msgAlreadyVerified = "You're already verified!"
	msgVerifyPrompt    = "🔐 Please join our channel to complete verification:"
)

func greetingMessage(coins int64) string {
	return fmt.Sprintf(
		"🎮 Welcome to Free Fire Bot!\nUse /help to see available commands.\n🪙 Your coins: %d",
		coins,
	)
}

func coinsMessage(coins int64) string {
	return fmt.Sprintf("🪙 Your coins: %d", coins)
}

func likeSentMessage(region, uid string) string {
	return fmt.Sprintf("✅ Sent like to UID %s in %s region!", uid, strings.ToUpper(region))
}

func visitSentMessage(region, uid string) string {
	return fmt.Sprintf("✅ Sent visit to UID %s in %s region!", uid, strings.ToUpper(region))
}

func verifiedMessage(coins int64) string {
	return fmt.Sprintf("✅ Verification complete! You earned 1 coin.\n🪙 Your coins: %d", coins)
}

func usageMessage(name, usage string) string {
	return fmt.Sprintf("Usage: /%s %s", name, usage)
}

func leaderboardMessage(region, mode string, entries []model.LeaderboardEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 Leaderboard for %s (%s):\n\n", strings.ToUpper(region), strings.ToUpper(mode))
	for _, e := range entries {
		fmt.Fprintf(&b, "%d. %s - %d points\n", e.Rank, e.Name, e.Points)
	}
	return b.String()
}

func passLeaderboardMessage(entries []model.PassEntry) string {
	var b strings.Builder
	b.WriteString("🌟 Booyah Pass Leaderboard:\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%d. %s - Level %d\n", e.Rank, e.Name, e.Level)
	}
	return b.String()
}
