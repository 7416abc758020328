package model

// Representative is an internal staff account managed by admins.
// UserType is immutable after creation; the upstream API ignores attempts to change it.
type Representative struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	UserType    string  `json:"userType"`
	IsActive    bool    `json:"isActive"`
	Token       *string `json:"token"`
}
