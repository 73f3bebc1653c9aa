package auth

import (
	"context"
	"strings"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/models"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/app/services/core/universities"
	"campuscare-service/internal/app/services/core/users"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const defaultLeaveBalance = 12

type authUsecase struct {
	UserRepository       users.UserRepository
	DoctorRepository     doctors.DoctorRepository
	UniversityRepository universities.UniversityRepository
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	doctorMongoRepository doctors.DoctorRepository,
	universityMongoRepository universities.UniversityRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:       userMongoRepository,
		DoctorRepository:     doctorMongoRepository,
		UniversityRepository: universityMongoRepository,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	role := constvars.RoleStudent
	universityID := ""
	if request.Email == uc.InternalConfig.Admin.Email {
		role = constvars.RoleAdmin
	} else {
		domain := emailDomain(request.Email)
		university, err := uc.UniversityRepository.FindByDomain(ctx, domain)
		if err != nil {
			return nil, err
		}
		if university == nil {
			return nil, exceptions.ErrUniversityDomainNoMatch(nil)
		}
		universityID = university.ID
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:         request.Name,
		Email:        request.Email,
		Password:     hashedPassword,
		Role:         role,
		University:   universityID,
		LeaveBalance: defaultLeaveBalance,
		IsVerified:   true,
		IsApproved:   true,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return &responses.Signup{
		ID:    userID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// Login checks the users collection first and falls back to doctors, so a
// doctor signs in with the same endpoint as everyone else.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if !utils.CheckPasswordHash(request.Password, user.Password) {
			return nil, exceptions.ErrInvalidEmailOrPassword(nil)
		}
		return uc.issueToken(user.ID, user.Role, &responses.User{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			University:     user.University,
			AttendedCount:  user.AttendedCount,
			ProfilePicture: user.ProfilePicture,
		})
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, doctor.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	return uc.issueToken(doctor.ID, constvars.RoleDoctor, &responses.User{
		ID:    doctor.ID,
		Name:  doctor.Name,
		Email: doctor.Email,
		Role:  constvars.RoleDoctor,
	})
}

func (uc *authUsecase) CreateUniversityAdmin(ctx context.Context, request *requests.CreateUniversityAdmin) (*responses.CreateUniversityAdmin, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.CreateUniversityAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	university, err := uc.UniversityRepository.FindByID(ctx, request.UniversityID)
	if err != nil {
		return nil, err
	}
	if university == nil {
		return nil, exceptions.ErrUniversityNotFound(nil)
	}

	email := university.AdminEmail
	if email == "" {
		if len(university.DomainPatterns) == 0 {
			return nil, exceptions.ErrUniversityDomainNoMatch(nil)
		}
		email = "admin@" + strings.TrimPrefix(university.DomainPatterns[0], "@")
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:       university.Name + " Admin",
		Email:      email,
		Password:   hashedPassword,
		Role:       constvars.RoleUniversityAdmin,
		University: university.ID,
		IsVerified: true,
		IsApproved: true,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.CreateUniversityAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return &responses.CreateUniversityAdmin{
		ID:         userID,
		Email:      email,
		University: university.Name,
	}, nil
}

func (uc *authUsecase) issueToken(userID, role string, user *responses.User) (*responses.Login, error) {
	token, err := utils.GenerateJWT(userID, role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	return &responses.Login{Token: token, User: user}, nil
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return email[at+1:]
}
