package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JunoAX/cafe-fausse/internal/flash"
	"github.com/gin-gonic/gin"
)

const (
	flashMessageKey = "flash_message"
	flashServiceKey = "flash_service"
	flashSecureKey  = "flash_secure"
)

// Flash reads and clears a pending flash cookie and makes the message
// available to handlers through GetFlash
func Flash(service *flash.Service, secure bool, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(flashServiceKey, service)
		c.Set(flashSecureKey, secure)

		token, err := c.Cookie(flash.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		msg, err := service.Parse(token)
		switch {
		case err == nil:
			c.Set(flashMessageKey, msg)
		case errors.Is(err, flash.ErrExpiredToken):
			logger.Debug("Dropping expired flash", "path", c.Request.URL.Path)
		default:
			logger.Warn("Dropping invalid flash", "path", c.Request.URL.Path)
		}

		clearFlashCookie(c, secure)
		c.Next()
	}
}

// SetFlash stores msg in a signed cookie shown on the next page view
func SetFlash(c *gin.Context, msg flash.Message) error {
	value, exists := c.Get(flashServiceKey)
	if !exists {
		return errors.New("flash middleware not installed")
	}
	service := value.(*flash.Service)

	token, err := service.Issue(msg)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flash.CookieName, token, int(service.TTL().Seconds()), "/", "", c.GetBool(flashSecureKey), true)
	return nil
}

// GetFlash retrieves the flash message for this request
func GetFlash(c *gin.Context) (flash.Message, bool) {
	msg, exists := c.Get(flashMessageKey)
	if !exists {
		return flash.Message{}, false
	}
	return msg.(flash.Message), true
}

func clearFlashCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flash.CookieName, "", -1, "/", "", secure, true)
}
