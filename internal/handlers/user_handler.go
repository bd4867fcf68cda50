package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/services"
)

// UserHandler serves the read-only users resource.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	users, total, err := h.userService.List(page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	user, err := h.userService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}
