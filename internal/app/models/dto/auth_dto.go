package dto

// LoginRequest is the payload for operator login
type LoginRequest struct {
	Username string `json:"username" binding:"required" validate:"required,min=2,max=15"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}
