package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/JunoAX/cafe-fausse/internal/flash"
	"github.com/JunoAX/cafe-fausse/internal/middleware"
	"github.com/JunoAX/cafe-fausse/internal/models"
	"github.com/gin-gonic/gin"
)

// SubscribedMessage confirms a newsletter signup
const SubscribedMessage = "Merci! You're on the list."

// Subscriber signs guests up for the newsletter
type Subscriber interface {
	SubscribeNewsletter(ctx context.Context, req models.NewsletterRequest) (*models.SubscribeResponse, error)
}

type newsletterForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
}

// SubscribeNewsletter forwards the signup form to the backend. On success
// the visitor is redirected with a confirmation; on failure the form is
// shown again with the backend's message.
func SubscribeNewsletter(subscriber Subscriber, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form newsletterForm
		if err := c.ShouldBind(&form); err != nil {
			renderError(c, http.StatusBadRequest, "Invalid form submission.")
			return
		}
		form.Name = strings.TrimSpace(form.Name)
		form.Email = strings.TrimSpace(form.Email)
		form.Phone = strings.TrimSpace(form.Phone)

		_, err := subscriber.SubscribeNewsletter(c.Request.Context(), models.NewsletterRequest{
			Name:  form.Name,
			Email: form.Email,
			Phone: form.Phone,
		})
		if err != nil {
			logger.Warn("Newsletter signup failed", "error", err)
			c.HTML(http.StatusUnprocessableEntity, "home", page(c, "home", "", gin.H{
				"Form":  form,
				"Error": api.Message(err),
			}))
			return
		}

		if err := middleware.SetFlash(c, flash.Message{Kind: flash.KindSuccess, Text: SubscribedMessage}); err != nil {
			logger.Error("Failed to set flash", "error", err)
		}
		c.Redirect(http.StatusSeeOther, "/#newsletter")
	}
}
