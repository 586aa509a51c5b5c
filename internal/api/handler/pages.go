package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the public page descriptors the SPA shell renders.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type pageResponse struct {
	Page  string            `json:"page"`
	Links map[string]string `json:"links"`
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{
		Page: "login",
		Links: map[string]string{
			"signup": "/signup",
			"submit": "/auth/login",
		},
	})
}

func (h *PageHandler) Signup(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{
		Page: "signup",
		Links: map[string]string{
			"login":  "/login",
			"submit": "/auth/signup",
		},
	})
}
