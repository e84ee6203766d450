package asana

// OAuth2Credentials holds tokens obtained through the authorization-code
// flow. RefreshToken may be empty when the grant did not include one.
type OAuth2Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Credentials is a union of the two supported credential kinds: an
// OAuth2 token pair or a personal access token. Exactly one side is set.
type Credentials struct {
	OAuth2              *OAuth2Credentials `json:"oauth2,omitempty"`
	PersonalAccessToken string             `json:"pat,omitempty"`
}

// Token returns the bearer token to present to the API.
func (c Credentials) Token() string {
	if c.OAuth2 != nil {
		return c.OAuth2.AccessToken
	}
	return c.PersonalAccessToken
}

// IsZero reports whether no credential is present.
func (c Credentials) IsZero() bool {
	return c.OAuth2 == nil && c.PersonalAccessToken == ""
}
