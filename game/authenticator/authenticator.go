package authenticator

type AuthenticatorType string

const (
	MICROSOFT AuthenticatorType = "msa"
	UNKNOWN   AuthenticatorType = "unknown"
)

// AuthenticatorResponse is the opaque identity record handed to the
// profile: game UUID, access token and display name, plus the
// intermediate tokens of the exchange for callers that want to cache
// them.
type AuthenticatorResponse struct {
	UserUUID    string            `json:"user_uuid"`
	Token       string            `json:"token"`
	UserName    string            `json:"username"`
	OtherTokens map[string]string `json:"other_tokens"`
}

// Only Microsoft accounts are supported; the interface exists so tests
// can inject a fake exchange.
type Authenticator interface {
	GetType() AuthenticatorType
	GetAuthorizationURL() string
	AuthenticateWithCode(code string) (*AuthenticatorResponse, error)
}
