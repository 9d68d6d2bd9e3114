package unavailability

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UnavailabilityController struct {
	Log                   *zap.Logger
	UnavailabilityUsecase UnavailabilityUsecase
}

func NewUnavailabilityController(logger *zap.Logger, unavailabilityUsecase UnavailabilityUsecase) *UnavailabilityController {
	return &UnavailabilityController{
		Log:                   logger,
		UnavailabilityUsecase: unavailabilityUsecase,
	}
}

func (ctrl *UnavailabilityController) Create(w http.ResponseWriter, r *http.Request) {
	request := &requests.CreateUnavailability{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.UnavailabilityUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUnavailabilitySuccessMessage, record)
}

func (ctrl *UnavailabilityController) FindByPractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, "practitionerID")
	includeInactive := r.URL.Query().Get("includeInactive") == "true"
	upcomingOnly := r.URL.Query().Get("upcoming") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := ctrl.UnavailabilityUsecase.FindByPractitioner(ctx, practitionerID, includeInactive, upcomingOnly)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUnavailabilitySuccessMessage, records)
}

func (ctrl *UnavailabilityController) Update(w http.ResponseWriter, r *http.Request) {
	unavailabilityID := chi.URLParam(r, "unavailabilityID")

	request := &requests.UpdateUnavailability{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.UnavailabilityUsecase.Update(ctx, unavailabilityID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUnavailabilitySuccessMessage, record)
}

func (ctrl *UnavailabilityController) Delete(w http.ResponseWriter, r *http.Request) {
	unavailabilityID := chi.URLParam(r, "unavailabilityID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UnavailabilityUsecase.SoftDelete(ctx, unavailabilityID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteUnavailabilitySuccessMessage, nil)
}

func (ctrl *UnavailabilityController) BlockedDates(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, "practitionerID")
	startDate := r.URL.Query().Get("start")
	endDate := r.URL.Query().Get("end")
	locationID := r.URL.Query().Get("locationId")

	if _, err := utils.ParseISODate(startDate); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, "start"))
		return
	}
	if _, err := utils.ParseISODate(endDate); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, "end"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dates, err := ctrl.UnavailabilityUsecase.BlockedDatesInRange(ctx, practitionerID, startDate, endDate, locationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlockedDatesSuccessMessage, dates)
}
