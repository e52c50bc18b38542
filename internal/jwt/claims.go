package jwt

import (
	"strconv"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token.
// Roles is kept for wire compatibility with existing consoles and is always empty.
type Claims struct {
	UserName string `json:"user_name"`
	Roles    string `json:"roles"`
	jwtv5.RegisteredClaims
}

// UserID parses the subject back into the numeric user id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}
