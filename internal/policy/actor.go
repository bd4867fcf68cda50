package policy

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Actor is the authenticated identity a request acts as. The zero value is an
// anonymous caller.
type Actor struct {
	ID            uuid.UUID
	Email         string
	Role          string
	Authenticated bool
}

// FromContext builds an Actor from the JWT the auth middleware stored in
// Fiber locals. Returns an anonymous Actor when no valid token is present,
// so public endpoints can share handlers with protected ones.
func FromContext(c *fiber.Ctx) Actor {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Actor{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return Actor{}
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Actor{ID: id, Email: email, Role: role, Authenticated: true}
}

// RequireActor is FromContext for endpoints where authentication is
// mandatory.
func RequireActor(c *fiber.Ctx) (Actor, error) {
	actor := FromContext(c)
	if !actor.Authenticated {
		return Actor{}, errors.New("missing or invalid token")
	}
	return actor, nil
}
