package asana

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsToken(t *testing.T) {
	assert.Equal(t, "pat", Credentials{PersonalAccessToken: "pat"}.Token())
	assert.Equal(t, "access", Credentials{OAuth2: &OAuth2Credentials{AccessToken: "access"}}.Token())
	assert.Empty(t, Credentials{}.Token())
}

func TestCredentialsIsZero(t *testing.T) {
	assert.True(t, Credentials{}.IsZero())
	assert.False(t, Credentials{PersonalAccessToken: "pat"}.IsZero())
	assert.False(t, Credentials{OAuth2: &OAuth2Credentials{}}.IsZero())
}

func TestCredentialsJSONRoundTrip(t *testing.T) {
	creds := Credentials{OAuth2: &OAuth2Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}}

	data, err := json.Marshal(creds)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"pat"`)

	var loaded Credentials
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, creds, loaded)
}
