package listClasses

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
	"time"
)

type ClassesResponse struct {
	response.Response
	Classes []models.FitnessClass `json:"classes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassLister
type ClassLister interface {
	ListUpcomingClasses(ctx context.Context, after time.Time, skip, limit int) ([]models.FitnessClass, error)
}

func New(log *slog.Logger, classes ClassLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.listClasses.New"

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

		pag, err := request.ParsePagination(r)
		if err != nil {
			log.Error("invalid pagination", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))

			return
		}

		list, err := classes.ListUpcomingClasses(r.Context(), time.Now().UTC(), pag.Skip, pag.Limit)
		if err != nil {
			log.Error("failed to get fitness classes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get fitness classes"))

			return
		}

		converted := make([]models.FitnessClass, 0, len(list))
		for _, class := range list {
			converted = append(converted, class.In(loc))
		}

		log.Info("fitness classes listed", slog.Int("count", len(converted)))

		responseOK(w, r, converted)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, classes []models.FitnessClass) {
	render.JSON(w, r, ClassesResponse{
		Response: response.OK(),
		Classes:  classes,
	})
}
