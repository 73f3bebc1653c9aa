package universities

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

type UniversityController struct {
	Log               *zap.Logger
	UniversityUsecase UniversityUsecase
}

func NewUniversityController(logger *zap.Logger, universityUsecase UniversityUsecase) *UniversityController {
	return &UniversityController{
		Log:               logger,
		UniversityUsecase: universityUsecase,
	}
}

func (ctrl *UniversityController) CreateUniversity(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateUniversity)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateUniversityRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UniversityUsecase.CreateUniversity(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUniversitySuccessMessage, response)
}

func (ctrl *UniversityController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UniversityUsecase.FindAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUniversitiesSuccessMessage, response)
}

func (ctrl *UniversityController) FindByID(w http.ResponseWriter, r *http.Request) {
	universityID := chi.URLParam(r, "universityID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UniversityUsecase.FindByID(ctx, universityID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUniversitySuccessMessage, response)
}
