package models

const (
	RoleSystem  = "system"
	RoleStudent = "user"
	RoleTutor   = "assistant"
)

type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}
