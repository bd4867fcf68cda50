package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/policy"
	"github.com/staynest/staynest-backend/internal/services"
	"github.com/staynest/staynest-backend/internal/validation"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	property, err := h.propertyService.Create(actor, services.CreatePropertyInput{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPropertyResponse(property))
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	properties, total, err := h.propertyService.List(page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		resp = append(resp, dto.NewPropertyResponse(&properties[i]))
	}
	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	property, err := h.propertyService.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewPropertyResponse(property))
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	property, err := h.propertyService.Update(c.UserContext(), actor, id, services.UpdatePropertyInput{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewPropertyResponse(property))
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	if err := h.propertyService.Delete(c.UserContext(), actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
