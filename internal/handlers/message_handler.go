package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/policy"
	"github.com/staynest/staynest-backend/internal/services"
	"github.com/staynest/staynest-backend/internal/validation"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Create(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	message, err := h.messageService.Create(actor, services.CreateMessageInput{
		RecipientID: req.RecipientID,
		Body:        req.Body,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMessageResponse(message))
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pageParams(c)

	messages, total, err := h.messageService.List(actor, page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, dto.NewMessageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *MessageHandler) Get(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	message, err := h.messageService.Get(actor, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewMessageResponse(message))
}

func (h *MessageHandler) Update(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	message, err := h.messageService.UpdateBody(actor, id, req.Body)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewMessageResponse(message))
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	if err := h.messageService.Delete(actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
