package api

import "pitlane-backend-go/internal/models"

// Response is the uniform JSON envelope. Status is "success" for 2xx,
// "fail" for 4xx and "error" for 5xx. Data carries the payload on
// success; Message carries the human-readable reason otherwise.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is the payload of register and login responses. The JSON
// serialization of models.User never includes the password hash.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}
