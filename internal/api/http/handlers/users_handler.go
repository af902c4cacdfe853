package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/api/dto"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/service"
	apperrors "github.com/spec-kit/post-service/pkg/util/errorutil"
)

// UsersHandler exposes account read endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List GET /users. Admin only, enforced at the route.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.UserResponse{
			ID:        users[i].ID,
			Name:      users[i].Name,
			Role:      string(users[i].Role),
			CreatedAt: users[i].CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Me GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	userID, ok := auth.SubjectFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	user, err := h.users.GetByID(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}})
}
