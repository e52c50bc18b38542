// Package auth contiene los DTOs de /auth.
package auth

// SignInRequest body de POST /auth/signin.
type SignInRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}
