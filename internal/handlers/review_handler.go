package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/policy"
	"github.com/staynest/staynest-backend/internal/services"
	"github.com/staynest/staynest-backend/internal/validation"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	review, err := h.reviewService.Create(actor, services.CreateReviewInput{
		PropertyID: req.PropertyID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewReviewResponse(review))
}

// List is public; ?property_id= narrows to one listing's reviews.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	var propertyID *uuid.UUID
	if raw := c.Query("property_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "property_id must be a valid UUID")
		}
		propertyID = &id
	}

	reviews, total, err := h.reviewService.List(propertyID, page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, dto.NewReviewResponse(&reviews[i]))
	}
	return c.JSON(fiber.Map{
		"data":       resp,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	review, err := h.reviewService.Get(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewReviewResponse(review))
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Update(actor, id, services.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.NewReviewResponse(review))
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	actor, err := policy.RequireActor(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := idParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	if err := h.reviewService.Delete(actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
