package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/JunoAX/cafe-fausse/internal/api"
	"github.com/JunoAX/cafe-fausse/internal/content"
	"github.com/JunoAX/cafe-fausse/internal/flash"
	"github.com/JunoAX/cafe-fausse/internal/middleware"
	"github.com/JunoAX/cafe-fausse/internal/models"
	"github.com/JunoAX/cafe-fausse/internal/web"
	"github.com/gin-gonic/gin"
)

// defaultPartySize prefills the booking form
const defaultPartySize = "2"

// ReservationCreator books tables
type ReservationCreator interface {
	CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error)
}

type reservationForm struct {
	TimeSlot  string `form:"time_slot"`
	PartySize string `form:"party_size"`
	Name      string `form:"name"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
}

// partySize parses the submitted size, falling back to 1 when the field is
// not a whole number
func (f reservationForm) partySize() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.PartySize))
	if err != nil {
		return 1
	}
	return n
}

func renderReservations(c *gin.Context, status int, form reservationForm, message string) {
	c.HTML(status, "reservations", page(c, "reservations", "Reservations", gin.H{
		"Form":          form,
		"Error":         message,
		"TablesPerSlot": content.TablesPerSlot,
	}))
}

// ReservationsPage renders the booking form
func ReservationsPage(c *gin.Context) {
	renderReservations(c, http.StatusOK, reservationForm{PartySize: defaultPartySize}, "")
}

// CreateReservation submits the booking form. A full slot comes back from
// the backend as a 409 whose message is shown as is.
func CreateReservation(creator ReservationCreator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form reservationForm
		if err := c.ShouldBind(&form); err != nil {
			renderError(c, http.StatusBadRequest, "Invalid form submission.")
			return
		}
		form.TimeSlot = strings.TrimSpace(form.TimeSlot)
		form.Name = strings.TrimSpace(form.Name)
		form.Email = strings.TrimSpace(form.Email)
		form.Phone = strings.TrimSpace(form.Phone)

		reservation, err := creator.CreateReservation(c.Request.Context(), models.ReservationRequest{
			TimeSlot:  form.TimeSlot,
			PartySize: form.partySize(),
			Name:      form.Name,
			Email:     form.Email,
			Phone:     form.Phone,
		})
		if err != nil {
			logger.Warn("Reservation failed", "time_slot", form.TimeSlot, "error", err)
			renderReservations(c, http.StatusUnprocessableEntity, form, api.Message(err))
			return
		}

		logger.Info("Reservation created", "reservation_id", reservation.ID.String(), "table", reservation.TableText())
		if err := middleware.SetFlash(c, flash.Message{Kind: flash.KindSuccess, Text: confirmation(reservation)}); err != nil {
			logger.Error("Failed to set flash", "error", err)
		}
		c.Redirect(http.StatusSeeOther, "/reservations")
	}
}

// confirmation renders "Reservation confirmed for table #N at <time>. (ID: X)"
func confirmation(r *models.Reservation) string {
	return fmt.Sprintf("Reservation confirmed for table #%s at %s. (ID: %s)", r.TableText(), web.FormatDateTime(r.TimeSlot), r.ID)
}
