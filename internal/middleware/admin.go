package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/staynest/staynest-backend/internal/config"
	"github.com/staynest/staynest-backend/internal/dto"
	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

// AdminRequired gates a route to administrators. A caller passes if their
// email is in the config admin list, or their stored role is admin. The DB
// read keeps a demoted account from riding out an old token.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		actor := policy.FromContext(c)
		if !actor.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if contains(adminEmails, actor.Email) {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", actor.ID).Error; err == nil {
			if user.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
