package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/policy"
	"github.com/staynest/staynest-backend/internal/services"
	"github.com/staynest/staynest-backend/internal/validation"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.bookingService.Create(actor, services.CreateBookingInput{
		PropertyID: req.PropertyID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewBookingResponse(booking))
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pageParams(c)

	bookings, total, err := h.bookingService.List(actor, page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.NewBookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	booking, err := h.bookingService.Get(actor, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewBookingResponse(booking))
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	booking, err := h.bookingService.Update(actor, id, services.UpdateBookingInput{
		PropertyID: req.PropertyID,
		UserID:     req.UserID,
		Status:     req.Status,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewBookingResponse(booking))
}

func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	if err := h.bookingService.Delete(actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
