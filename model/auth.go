package model

// LoginRequest is decoded from a form-encoded body.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ShopResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	ZaloID  string `json:"zalo_id"`
	Address string `json:"address"`
}
