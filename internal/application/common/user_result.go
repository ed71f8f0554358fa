package common

type UserResult struct {
	Id      string `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role"`
	IsGuest bool   `json:"isGuest"`
}
