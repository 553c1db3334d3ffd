package handler

import (
	"errors"
	"strings"

	"go-gold-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserInactive) {
			return c.Status(403).JSON(fiber.Map{"error": "Account disabled: check your access rights with an administrator"})
		}
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session"})
	}
	if err := h.service.Logout(userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log out"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Session reports the authenticated projection for the admin shell's route
// guard. It never errors; absent or stale tokens read as unauthenticated.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := ""
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		token = parts[1]
	}

	resp, err := h.service.Session(token)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(resp)
}
