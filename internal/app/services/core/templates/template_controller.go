package templates

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TemplateController struct {
	Log             *zap.Logger
	TemplateUsecase TemplateUsecase
}

func NewTemplateController(logger *zap.Logger, templateUsecase TemplateUsecase) *TemplateController {
	return &TemplateController{
		Log:             logger,
		TemplateUsecase: templateUsecase,
	}
}

func (ctrl *TemplateController) Create(w http.ResponseWriter, r *http.Request) {
	request := &requests.CreateSlotTemplate{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	template, err := ctrl.TemplateUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTemplateSuccessMessage, template)
}

func (ctrl *TemplateController) FindByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	template, err := ctrl.TemplateUsecase.FindByID(ctx, templateID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTemplateSuccessMessage, template)
}

func (ctrl *TemplateController) Find(w http.ResponseWriter, r *http.Request) {
	filter := contracts.TemplateFilter{
		PractitionerID: r.URL.Query().Get("practitionerId"),
		LocationID:     r.URL.Query().Get("locationId"),
		DayOfWeek:      r.URL.Query().Get("dayOfWeek"),
		Modality:       r.URL.Query().Get("modality"),
	}
	if raw := r.URL.Query().Get("isActive"); raw != "" {
		isActive := raw == "true"
		filter.IsActive = &isActive
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	templates, err := ctrl.TemplateUsecase.FindWithFilter(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTemplateSuccessMessage, templates)
}

func (ctrl *TemplateController) Update(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")

	request := &requests.UpdateSlotTemplate{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	template, err := ctrl.TemplateUsecase.Update(ctx, templateID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTemplateSuccessMessage, template)
}

func (ctrl *TemplateController) Activate(w http.ResponseWriter, r *http.Request) {
	ctrl.toggleActive(w, r, true)
}

func (ctrl *TemplateController) Deactivate(w http.ResponseWriter, r *http.Request) {
	ctrl.toggleActive(w, r, false)
}

func (ctrl *TemplateController) toggleActive(w http.ResponseWriter, r *http.Request, activate bool) {
	templateID := chi.URLParam(r, "templateID")

	request := &requests.TemplateActor{}
	if r.ContentLength > 0 {
		if err := utils.DecodeAndValidate(r, request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var err error
	var template interface{}
	var message string
	if activate {
		template, err = ctrl.TemplateUsecase.Activate(ctx, templateID, request.Actor)
		message = constvars.ActivateTemplateSuccessMessage
	} else {
		template, err = ctrl.TemplateUsecase.Deactivate(ctx, templateID, request.Actor)
		message = constvars.DeactivateTemplateSuccessMessage
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, template)
}

func (ctrl *TemplateController) BlockDate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")

	request := &requests.BlockTemplateDate{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	template, err := ctrl.TemplateUsecase.BlockDate(ctx, templateID, request.Date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BlockDateSuccessMessage, template)
}

func (ctrl *TemplateController) UnblockDate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	date := chi.URLParam(r, "date")

	if _, err := utils.ParseISODate(date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, "date"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	template, err := ctrl.TemplateUsecase.UnblockDate(ctx, templateID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UnblockDateSuccessMessage, template)
}
