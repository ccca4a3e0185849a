package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frutech/auth-service/internal/api/middleware"
	"github.com/frutech/auth-service/internal/core/domain"
	"github.com/frutech/auth-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type claimsResponse struct {
	Username  string `json:"username"`
	UserID    string `json:"user_id"`
	UserType  string `json:"user_type"`
	Name      string `json:"name,omitempty"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}

type verifyResponse struct {
	Valid  bool            `json:"valid"`
	Claims *claimsResponse `json:"claims,omitempty"`
}

// Login authenticates a user and issues a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Verify checks the bearer token presented in the Authorization header.
// Any failure answers the same invalid envelope regardless of cause.
//
// @Summary      Verify token
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  true  "Bearer token"
// @Success      200            {object}  verifyResponse
// @Failure      401            {object}  verifyResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	raw, err := middleware.BearerToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, verifyResponse{Valid: false})
	}

	result := h.authService.Verify(c.Request().Context(), raw)
	if !result.Valid {
		return c.JSON(http.StatusUnauthorized, verifyResponse{Valid: false})
	}

	claims := result.Claims
	resp := verifyResponse{
		Valid: true,
		Claims: &claimsResponse{
			Username: claims.Subject,
			UserID:   claims.UserID,
			UserType: claims.UserType,
			Name:     claims.Name,
		},
	}
	if claims.IssuedAt != nil {
		resp.Claims.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		resp.Claims.ExpiresAt = claims.ExpiresAt.Unix()
	}

	return c.JSON(http.StatusOK, resp)
}
