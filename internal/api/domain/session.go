package domain

// Session is the credential handed back by a successful login. The access
// token is an EdDSA-signed JWT carrying the user id and role; multiple live
// sessions per user are allowed.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds until expiry
}
