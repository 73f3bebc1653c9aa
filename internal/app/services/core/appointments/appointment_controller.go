package appointments

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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	studentID := utils.GetUserID(r.Context())

	request := new(requests.CreateAppointment)
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

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, studentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := &requests.AppointmentFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	ctrl.list(w, r, filter)
}

func (ctrl *AppointmentController) FindByDoctor(w http.ResponseWriter, r *http.Request) {
	filter := &requests.AppointmentFilter{
		Doctor: chi.URLParam(r, "doctorID"),
		Status: r.URL.Query().Get("status"),
	}
	ctrl.list(w, r, filter)
}

// FindMine lists the appointments belonging to the caller: a doctor sees
// appointments addressed to them, everyone else sees their own bookings.
func (ctrl *AppointmentController) FindMine(w http.ResponseWriter, r *http.Request) {
	filter := &requests.AppointmentFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	if utils.GetUserRole(r.Context()) == constvars.RoleDoctor {
		filter.Doctor = utils.GetUserID(r.Context())
	} else {
		filter.Student = utils.GetUserID(r.Context())
	}
	ctrl.list(w, r, filter)
}

func (ctrl *AppointmentController) FindPending(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, &requests.AppointmentFilter{Status: constvars.AppointmentStatusPending})
}

func (ctrl *AppointmentController) FindApproved(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, &requests.AppointmentFilter{Status: constvars.AppointmentStatusApproved})
}

func (ctrl *AppointmentController) FindRejected(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, &requests.AppointmentFilter{Status: constvars.AppointmentStatusRejected})
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UpdateAppointmentStatus)
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

	actorID := utils.GetUserID(r.Context())
	actorRole := utils.GetUserRole(r.Context())
	response, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, appointmentID, actorID, actorRole, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccess, response)
}

func (ctrl *AppointmentController) GetAttendedCount(w http.ResponseWriter, r *http.Request) {
	ctrl.counts(w, r, constvars.GetAttendedCountSuccessMessage)
}

func (ctrl *AppointmentController) GetUpcomingCount(w http.ResponseWriter, r *http.Request) {
	ctrl.counts(w, r, constvars.GetUpcomingCountSuccessMessage)
}

func (ctrl *AppointmentController) list(w http.ResponseWriter, r *http.Request, filter *requests.AppointmentFilter) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAll(ctx, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) counts(w http.ResponseWriter, r *http.Request, message string) {
	studentID := utils.GetUserID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAttendanceCounts(ctx, studentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}
