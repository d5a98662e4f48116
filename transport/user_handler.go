package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
	utilsContext "github.com/muhammadheryan/car-market/utils/context"
	"github.com/muhammadheryan/car-market/utils/errors"
	"github.com/muhammadheryan/car-market/utils/logger"
	"go.uber.org/zap"
)

// SessionResponse is the decoded content of the current session token.
type SessionResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register handler
// @Summary Register user
// @Description Register a new user account
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/inscription [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Authenticate and set the access_token session cookie
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/connexion [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, s.sessionCookie(res.Token, int(time.Until(res.ExpiresAt).Seconds())))
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Revoke the session token, clear the cookie and redirect to the frontend
// @Tags Auth
// @Success 302
// @Router /logout [get]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s.endSession(w, r)
	http.Redirect(w, r, s.config.FrontendURL, http.StatusFound)
}

// GetSession handler
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /getJwt [get]
func (s *RestHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := utilsContext.GetClaims(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthenticated))
		return
	}

	res := SessionResponse{ID: claims.ID, Email: claims.Email, Admin: claims.Admin}
	if claims.ExpiresAt != nil {
		res.ExpiresAt = claims.ExpiresAt.Time
	}
	writeSuccess(w, res)
}

// GetProfile handler
// @Summary Get profile
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{id} [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update profile
// @Tags User
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/{id} [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAccount handler
// @Summary Delete own account
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deleteuser/{id} [delete]
func (s *RestHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if userID, ok := utilsContext.GetUserID(r.Context()); ok && userID == id {
		s.endSession(w, r)
	}
	writeSuccess(w, MessageResponse{Message: "user deleted"})
}

// DeleteUser handler
// @Summary Delete any user
// @Tags Admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /deletethisuser/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "user deleted"})
}

// ListUsers handler
// @Summary List users
// @Tags Admin
// @Produce json
// @Success 200 {array} model.UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /allusers [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// endSession revokes the current cookie token, if any, and expires the cookie.
func (s *RestHandler) endSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(constant.AccessTokenCookie); err == nil && cookie.Value != "" {
		if err := s.UserApp.Logout(r.Context(), cookie.Value); err != nil {
			logger.Warn("[endSession] revoke token", zap.String("error", err.Error()))
		}
	}
	http.SetCookie(w, s.sessionCookie("", -1))
}

func (s *RestHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constant.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.config.Auth.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	}
}
