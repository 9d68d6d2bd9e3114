package assignments

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssignmentController struct {
	Log               *zap.Logger
	AssignmentUsecase AssignmentUsecase
}

func NewAssignmentController(logger *zap.Logger, assignmentUsecase AssignmentUsecase) *AssignmentController {
	return &AssignmentController{
		Log:               logger,
		AssignmentUsecase: assignmentUsecase,
	}
}

func (ctrl *AssignmentController) Assign(w http.ResponseWriter, r *http.Request) {
	request := &requests.AssignLocation{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignment, err := ctrl.AssignmentUsecase.Assign(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssignmentSuccessMessage, assignment)
}

func (ctrl *AssignmentController) Unassign(w http.ResponseWriter, r *http.Request) {
	request := &requests.UnassignLocation{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignment, err := ctrl.AssignmentUsecase.Unassign(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssignmentSuccessMessage, assignment)
}

func (ctrl *AssignmentController) ListLocations(w http.ResponseWriter, r *http.Request) {
	practitionerID := chi.URLParam(r, "practitionerID")
	activeOnly := r.URL.Query().Get("activeOnly") != "false"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assignments, err := ctrl.AssignmentUsecase.ListLocations(ctx, practitionerID, activeOnly)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssignmentSuccessMessage, assignments)
}

func (ctrl *AssignmentController) Sync(w http.ResponseWriter, r *http.Request) {
	request := &requests.SyncAssignments{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.SyncAssignments(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SyncAssignmentSuccessMessage, result)
}

func (ctrl *AssignmentController) Reconcile(w http.ResponseWriter, r *http.Request) {
	request := &requests.ReconcileAssignments{}
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.Reconcile(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReconcileAssignmentSuccessMessage, result)
}
