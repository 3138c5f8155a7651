package validate

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"fyyur/constants"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names (image_link) instead of Go names (ImageLink)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v and flattens validator errors into one message.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "url":
			messages = append(messages, fmt.Sprintf("%s must be a valid URL", fe.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseId(c, key)
		if err != nil {
			return err
		}
		c.Locals(constants.LOCAL_INPUT_ID, id)
		return c.Next()
	}
}

// ParseId reads a positive integer route parameter.
func ParseId(c *fiber.Ctx, key string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(key), 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
	}
	return uint(value), nil
}

// InputId returns the id stored by GetById.
func InputId(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(constants.LOCAL_INPUT_ID).(uint)
	if !ok {
		return 0, fiber.NewError(fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS)
	}
	return id, nil
}

// bodyValues decodes a JSON object or urlencoded form into a field map.
// Repeated form keys become lists.
func bodyValues(c *fiber.Ctx) (map[string]any, error) {
	values := map[string]any{}
	if c.Is("json") {
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 {
			return values, nil
		}
		if err := c.App().Config().JSONDecoder(body, &values); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		return values, nil
	}

	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key, value := string(k), string(v)
		switch existing := values[key].(type) {
		case nil:
			values[key] = value
		case string:
			values[key] = []any{existing, value}
		case []any:
			values[key] = append(existing, value)
		}
	})
	return values, nil
}
