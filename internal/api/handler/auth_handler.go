package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

const tokenTTL = 24 * time.Hour

// AuthHandler resolves login assertions to user records and issues JWTs.
type AuthHandler struct {
	identity  ports.IdentityService
	jwtSecret string
}

func NewAuthHandler(identity ports.IdentityService, jwtSecret string) *AuthHandler {
	return &AuthHandler{identity: identity, jwtSecret: jwtSecret}
}

// sessionRequest carries the external login assertion. It deliberately has
// no role field: the public surface can never choose a role, the resolver
// derives it from the owner allow-list and the stored record.
type sessionRequest struct {
	OpenID      string `json:"open_id" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"login_method"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}

// CreateSession handles POST /auth/session.
//
// @Summary      Resolve a login assertion and issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      sessionRequest  true  "Login assertion"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /auth/session [post]
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.identity.Resolve(c.Request().Context(), ports.LoginAssertion{
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
	})
	if err != nil {
		return err
	}

	token, err := h.mintToken(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// Me handles GET /auth/me. Anonymous callers and valid tokens whose user
// record has gone missing both get {"user": null}.
//
// @Summary      Return the current user, or null
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id := optionalIdentity(c)
	if id.OpenID == "" {
		return c.JSON(http.StatusOK, meResponse{User: nil})
	}

	user, err := h.identity.Me(c.Request().Context(), id.OpenID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: user})
}

func (h *AuthHandler) mintToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"open_id": user.OpenID,
		"user_id": user.ID,
		"role":    user.Role,
		"name":    user.Name,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
}
