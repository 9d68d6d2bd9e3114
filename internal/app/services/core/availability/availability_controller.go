package availability

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, "practitionerID")
	locationID := r.URL.Query().Get("locationId")

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	days, err := ctrl.AvailabilityUsecase.GetAvailability(ctx, practitionerID, locationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, days)
}

func (ctrl *AvailabilityController) GenerateForTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	date := r.URL.Query().Get("date")

	if _, err := utils.ParseISODate(date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, "date"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	intervals, err := ctrl.AvailabilityUsecase.GenerateForTemplate(ctx, templateID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateSlotsSuccessMessage, intervals)
}
