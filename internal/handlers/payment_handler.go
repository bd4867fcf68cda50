package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/policy"
	"github.com/staynest/staynest-backend/internal/services"
	"github.com/staynest/staynest-backend/internal/validation"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	payment, err := h.paymentService.Create(actor, services.CreatePaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPaymentResponse(payment))
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pageParams(c)

	payments, total, err := h.paymentService.List(actor, page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, dto.NewPaymentResponse(&payments[i]))
	}
	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	payment, err := h.paymentService.Get(actor, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewPaymentResponse(payment))
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	payment, err := h.paymentService.Update(actor, id, services.UpdatePaymentInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewPaymentResponse(payment))
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	if err := h.paymentService.Delete(actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
