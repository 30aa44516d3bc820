package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scent-store-api/internal/dto"
	"scent-store-api/internal/service"
)

type AuthHandler struct {
	accountService service.AccountService
}

func NewAuthHandler(accountService service.AccountService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, err := h.accountService.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.TokenResponse{AccessToken: token})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, err := h.accountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}
