package users

import (
	"context"
	"net/http"
	"time"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.GetProfile(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserID(r.Context())

	request := new(requests.UpdateProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateProfileRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if request.ProfilePicture != "" {
		imageData, extension, err := utils.DecodeBase64Image(request.ProfilePicture)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		if err := utils.ValidateImageFormat(extension, constvars.ImageAllowedProfilePictureFormats); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		if err := utils.ValidateImageSize(imageData, ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		request.ProfilePictureData = imageData
		request.ProfilePictureExtension = extension
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.UpdateProfile(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, response)
}
