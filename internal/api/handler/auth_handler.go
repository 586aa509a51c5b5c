package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movieflix/movieflix-api/internal/api/metrics"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	RememberMe      bool   `json:"rememberMe"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// Signup creates a new account and directs the client to the login form.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form"
// @Success      201   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]map[string]string
// @Failure      409   {object}  map[string]map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Remember:        req.RememberMe,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	return c.JSON(http.StatusCreated, result)
}

// Login authenticates a user and directs the client to the browse screen.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login form"
// @Success      200   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]map[string]string
// @Failure      401   {object}  map[string]map[string]string
// @Failure      404   {object}  map[string]map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.auth.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.RememberMe,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, result)
}

// Logout clears the session flag.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "error").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("logout", "success").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state for the navbar greeting.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  ports.SessionInfo
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	info, err := h.auth.Session(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
