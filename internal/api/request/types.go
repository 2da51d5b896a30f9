package request

// CommandRequest is the request body for dispatching a bot command
type CommandRequest struct {
	UserID  string   `json:"user_id"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// CallbackRequest is the request body for delivering a callback event
type CallbackRequest struct {
	UserID string `json:"user_id"`
	Data   string `json:"data"`
}

// SetVIPRequest is the request body for setting an account's VIP flag
type SetVIPRequest struct {
	VIP bool `json:"vip"`
}

// CreditRequest is the request body for crediting coins to an account
type CreditRequest struct {
	Amount int64 `json:"amount"`
}
