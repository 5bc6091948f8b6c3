package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/model"
	"github.com/iliyamo/job-board-api/internal/service"
)

// AuthHandler exposes registration and login. Tokens issued here are
// stateless: there is nothing to store and nothing to revoke.
type AuthHandler struct {
	Auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   *model.User `json:"user"`
	Access tokenPart   `json:"access"`
}

// Register creates a user and returns it with a fresh access token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Auth.Register(ctx, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   res.User,
		Access: tokenPart{Token: res.Access.Token, Expires: res.Access.Exp},
	})
}

// Login verifies credentials and returns a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, authResp{
		User:   res.User,
		Access: tokenPart{Token: res.Access.Token, Expires: res.Access.Exp},
	})
}
