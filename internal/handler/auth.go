package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
)

const (
	MsgLoggedIn  = "Logged in successfully."
	MsgLoggedOut = "Logged out successfully."
)

// LoginRequest carries the credentials for the single admin account
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and establishes a session cookie
func HandleLogin(service auth.Service, cookieName string, secure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
			return
		}

		token, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredential) {
				respondError(w, http.StatusUnauthorized, ErrMsgBadCredentials)
				return
			}
			logger.FromContext(r.Context()).Error("Login failed unexpectedly", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedIn})
	}
}

// HandleLogout discards the session and clears the cookie. Logging out
// without a session is harmless.
func HandleLogout(service auth.Service, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(cookieName); err == nil {
			service.Logout(r.Context(), cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
	}
}
