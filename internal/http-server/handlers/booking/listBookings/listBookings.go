package listBookings

import (
	"context"
	"fitnessBooker/internal/lib/api/request"
	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/lib/timezone"
	"fitnessBooker/internal/models"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingWithClass `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListBookingsByEmail(ctx context.Context, email string, upcomingOnly bool, now time.Time, skip, limit int) ([]models.BookingWithClass, error)
}

func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(
			slog.String("op", op),
		)

		loc, err := timezone.Resolve(r.URL.Query().Get("timezone"))
		if err != nil {
			log.Error("invalid timezone requested", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
		if email == "" {
			log.Error("email query parameter is required")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("email query parameter is required"))

			return
		}

		upcomingOnly := true
		if raw := r.URL.Query().Get("upcoming"); raw != "" {
			upcomingOnly, err = strconv.ParseBool(raw)
			if err != nil {
				log.Error("invalid upcoming parameter", sl.Err(err))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("upcoming must be a boolean"))

				return
			}
		}

		pag, err := request.ParsePagination(r)
		if err != nil {
			log.Error("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		log = log.With(slog.String("client_email", email))

		list, err := bookings.ListBookingsByEmail(r.Context(), email, upcomingOnly, time.Now().UTC(), pag.Skip, pag.Limit)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))

			return
		}

		converted := make([]models.BookingWithClass, 0, len(list))
		for _, b := range list {
			converted = append(converted, b.In(loc))
		}

		log.Info("bookings listed", slog.Int("count", len(converted)))

		responseOK(w, r, converted)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.BookingWithClass) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
