package helper

import (
	"fyyur/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"
)

const flashKey = "_flashes"

// FlashMessage is a one-time notice shown on the next rendered page.
type FlashMessage struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func sessionStore(c *fiber.Ctx) *session.Store {
	store, _ := c.Locals(constants.LOCAL_SESSION).(*session.Store)
	return store
}

// Flash queues a message for the next page render. Failures are logged and
// otherwise ignored: a lost notice must not fail the request.
func Flash(c *fiber.Ctx, category, message string) {
	store := sessionStore(c)
	if store == nil {
		return
	}
	sess, err := store.Get(c)
	if err != nil {
		log.Warn().Err(err).Msg("flash: load session")
		return
	}
	messages, _ := sess.Get(flashKey).([]FlashMessage)
	sess.Set(flashKey, append(messages, FlashMessage{Category: category, Message: message}))
	if err := sess.Save(); err != nil {
		log.Warn().Err(err).Msg("flash: save session")
	}
}

func FlashSuccess(c *fiber.Ctx, message string) {
	Flash(c, constants.FLASH_SUCCESS, message)
}

func FlashError(c *fiber.Ctx, message string) {
	Flash(c, constants.FLASH_ERROR, message)
}

// TakeFlashes returns and clears the queued messages.
func TakeFlashes(c *fiber.Ctx) []FlashMessage {
	store := sessionStore(c)
	if store == nil {
		return nil
	}
	sess, err := store.Get(c)
	if err != nil {
		log.Warn().Err(err).Msg("flash: load session")
		return nil
	}
	messages, _ := sess.Get(flashKey).([]FlashMessage)
	if len(messages) == 0 {
		return nil
	}
	sess.Delete(flashKey)
	if err := sess.Save(); err != nil {
		log.Warn().Err(err).Msg("flash: save session")
	}
	return messages
}
