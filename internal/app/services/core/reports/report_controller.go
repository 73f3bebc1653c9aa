package reports

import (
	"context"
	"net/http"
	"time"

	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase ReportUsecase
}

func NewReportController(logger *zap.Logger, reportUsecase ReportUsecase) *ReportController {
	return &ReportController{
		Log:           logger,
		ReportUsecase: reportUsecase,
	}
}

func (ctrl *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReport)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReportUsecase.CreateReport(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReportSuccessMessage, response)
}

func (ctrl *ReportController) FindMine(w http.ResponseWriter, r *http.Request) {
	studentID := utils.GetUserID(r.Context())
	ctrl.listByStudent(w, r, studentID)
}

func (ctrl *ReportController) FindByStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")
	ctrl.listByStudent(w, r, studentID)
}

func (ctrl *ReportController) listByStudent(w http.ResponseWriter, r *http.Request, studentID string) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReportUsecase.FindByStudent(ctx, studentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, response)
}
