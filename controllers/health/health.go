package healthController

import (
	"classroom/database"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Healthz reports whether the datastore pool is reachable.
func Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := database.Database.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
