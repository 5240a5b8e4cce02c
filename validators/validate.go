package validators

import (
	"classroom/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseBody decodes the JSON body into dst and runs its struct-tag rules.
// Any failure is reported as the generic "Invalid data provided".
func ParseBody(c *fiber.Ctx, dst interface{}) error {
	if len(strings.TrimSpace(string(c.Body()))) == 0 {
		return middleware.InvalidData()
	}
	if err := c.BodyParser(dst); err != nil {
		return middleware.InvalidData()
	}
	return Check(dst)
}

// Check runs the struct-tag rules on an already decoded request.
func Check(dst interface{}) error {
	if err := validate.Struct(dst); err != nil {
		return middleware.InvalidData()
	}
	return nil
}

// ParamID reads a positive integer path parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, middleware.InvalidData()
	}
	return uint(id), nil
}
