package response

import (
	"time"

	"github.com/nahidff/likebot/internal/bot"
	"github.com/nahidff/likebot/internal/model"
)

// JoinPrompt tells the transport to render a join action: a channel link
// plus a confirm button carrying the callback data
type JoinPrompt struct {
	ChannelURL   string `json:"channel_url"`
	CallbackData string `json:"callback_data"`
}

// Reply is the response for command and callback endpoints. A handled
// command always carries the reply text; an unrecognized command or
// callback yields handled=false and no text (transport no-op).
type Reply struct {
	Handled bool        `json:"handled"`
	Text    string      `json:"text,omitempty"`
	Prompt  *JoinPrompt `json:"prompt,omitempty"`
}

// ReplyFromBot converts a bot.Reply to a response Reply
func ReplyFromBot(r bot.Reply) Reply {
	resp := Reply{
		Handled: r.Text != "",
		Text:    r.Text,
	}
	if r.Prompt != nil {
		resp.Prompt = &JoinPrompt{
			ChannelURL:   r.Prompt.ChannelURL,
			CallbackData: r.Prompt.CallbackData,
		}
	}
	return resp
}

// Account represents an account in admin API responses
type Account struct {
	ID        string    `json:"id"`
	Coins     int64     `json:"coins"`
	Verified  bool      `json:"verified"`
	VIP       bool      `json:"vip"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:        string(a.ID),
		Coins:     a.Coins,
		Verified:  a.Verified,
		VIP:       a.VIP,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
