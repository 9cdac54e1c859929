package classAvailability

import (
	"context"
	"errors"
	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/lib/timezone"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type AvailabilityResponse struct {
	response.Response
	ClassID        int       `json:"class_id"`
	ClassName      string    `json:"class_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	AvailableSlots int       `json:"available_slots"`
	TotalCapacity  int       `json:"total_capacity"`
	IsAvailable    bool      `json:"is_available"`
	TimeUntilStart int64     `json:"time_until_start_seconds"`
	Timezone       string    `json:"timezone"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassGetter
type ClassGetter interface {
	GetClass(ctx context.Context, id int) (*models.FitnessClass, error)
}

func New(log *slog.Logger, classes ClassGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.classAvailability.New"

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

		classIDStr := chi.URLParam(r, "id")
		if classIDStr == "" {
			log.Error("class id is required")
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("class id is required"))

			return
		}

		classID, err := strconv.Atoi(classIDStr)
		if err != nil {
			log.Error("invalid class id format", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid class id format"))

			return
		}

		log = log.With(slog.Int("class_id", classID))

		class, err := classes.GetClass(r.Context(), classID)
		if err != nil {
			if errors.Is(err, storage.ErrClassNotFound) {
				log.Warn("fitness class not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("fitness class not found"))

				return
			}

			log.Error("failed to get fitness class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get fitness class"))

			return
		}

		now := time.Now().UTC()

		var timeUntilStart int64
		if class.StartTime.After(now) {
			timeUntilStart = int64(class.StartTime.Sub(now).Seconds())
		}

		isAvailable := !class.IsFull() && class.StartTime.After(now)

		log.Info("class availability checked",
			slog.Bool("is_available", isAvailable),
			slog.Int("available_slots", class.AvailableSlots()),
		)

		display := class.In(loc)

		render.JSON(w, r, AvailabilityResponse{
			Response:       response.OK(),
			ClassID:        class.ID,
			ClassName:      class.Name,
			StartTime:      display.StartTime,
			EndTime:        display.EndTime,
			AvailableSlots: class.AvailableSlots(),
			TotalCapacity:  class.Capacity,
			IsAvailable:    isAvailable,
			TimeUntilStart: timeUntilStart,
			Timezone:       display.Timezone,
		})
	}
}
