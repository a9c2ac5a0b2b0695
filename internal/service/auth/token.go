package auth

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// TokenObject is the decoded form of a bearer token. The encoded form is the
// percent-encoded JSON text of this struct: an unsigned token with no expiry,
// valid only while its session id stays in the owning user's active set.
type TokenObject struct {
	SessionID int `json:"sessionId"`
	UserID    int `json:"userId"`
}

func EncodeToken(userID int, sessionID int) string {
	data, _ := json.Marshal(TokenObject{SessionID: sessionID, UserID: userID})
	return url.QueryEscape(string(data))
}

func DecodeToken(token string) (TokenObject, error) {
	decoded := TokenObject{}

	raw, err := url.QueryUnescape(token)
	if err != nil {
		return decoded, fmt.Errorf("unescaping token: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return decoded, fmt.Errorf("parsing token: %w", err)
	}

	return decoded, nil
}
