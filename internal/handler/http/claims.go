package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/auth"
)

// callerID extracts the authenticated user ID from the JWT claims.
func callerID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
