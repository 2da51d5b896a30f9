package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ReplyResult:
		o.printReply(v)
	case AccountResult:
		o.printAccount(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printReply(r ReplyResult) {
	if !r.Handled {
		fmt.Println("(not handled)")
		return
	}
	fmt.Println(r.Text)
	if r.Prompt != nil {
		fmt.Printf("\nJoin: %s\nConfirm with callback: %s\n", r.Prompt.ChannelURL, r.Prompt.CallbackData)
	}
}

func (o *Output) printAccount(a AccountResult) {
	fmt.Printf("Account:  %s\n", a.ID)
	fmt.Printf("Coins:    %d\n", a.Coins)
	fmt.Printf("Verified: %t\n", a.Verified)
	fmt.Printf("VIP:      %t\n", a.VIP)
}

// ReplyResult is the response for command/callback dispatch (matches API)
type ReplyResult struct {
	Handled bool          `json:"handled"`
	Text    string        `json:"text,omitempty"`
	Prompt  *PromptResult `json:"prompt,omitempty"`
}

// PromptResult is a join prompt in a reply
type PromptResult struct {
	ChannelURL   string `json:"channel_url"`
	CallbackData string `json:"callback_data"`
}

// AccountResult is an admin account response
type AccountResult struct {
	ID       string `json:"id"`
	Coins    int64  `json:"coins"`
	Verified bool   `json:"verified"`
	VIP      bool   `json:"vip"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}
