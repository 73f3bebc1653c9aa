package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/delivery/http/routers"
	"campuscare-service/internal/app/drivers/database"
	"campuscare-service/internal/app/drivers/logger"
	smtpdriver "campuscare-service/internal/app/drivers/mailer"
	"campuscare-service/internal/app/drivers/messaging"
	miniodriver "campuscare-service/internal/app/drivers/storage"
	"campuscare-service/internal/app/models"
	"campuscare-service/internal/app/services/core/appointments"
	"campuscare-service/internal/app/services/core/assessments"
	"campuscare-service/internal/app/services/core/auth"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/app/services/core/reports"
	"campuscare-service/internal/app/services/core/sessions"
	"campuscare-service/internal/app/services/core/universities"
	"campuscare-service/internal/app/services/core/users"
	"campuscare-service/internal/app/services/shared/mailer"
	"campuscare-service/internal/app/services/shared/redis"
	"campuscare-service/internal/app/services/shared/storage"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("invalid timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started",
		zap.String("address", internalConfig.App.Port),
	)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown cleanup failed", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := storage.NewMinioStorage(miniodriver.NewMinio(bootstrap.DriverConfig))
	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)

	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, internalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		log.Fatal("failed to initialize mailer service", zap.Error(err))
	}
	mailerWorker, err := mailer.NewMailerWorker(mailerService, bootstrap.RabbitMQ, internalConfig.App.RabbitMQMailerQueue, internalConfig.App.MailerRatePerSecond, log)
	if err != nil {
		log.Fatal("failed to initialize mailer worker", zap.Error(err))
	}
	if err := mailerWorker.Start(); err != nil {
		log.Fatal("failed to start mailer worker", zap.Error(err))
	}
	bootstrap.WorkerStop = mailerWorker.Stop

	// Middlewares
	m := middlewares.NewMiddlewares(log, internalConfig)
	bootstrap.Router.Use(m.RequestLogger(internalConfig.App, logger.NewLogrusLogger(internalConfig)))

	// Users
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, minioStorage, internalConfig, log)
	userController := users.NewUserController(log, userUsecase, internalConfig)

	// Doctors
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, userMongoRepository, redisRepository, minioStorage, mailerService, internalConfig, log)
	doctorController := doctors.NewDoctorController(log, doctorUsecase, internalConfig)

	// Universities
	universityMongoRepository := universities.NewUniversityMongoRepository(bootstrap.MongoDB, dbName)
	universityUsecase := universities.NewUniversityUsecase(universityMongoRepository, log)
	universityController := universities.NewUniversityController(log, universityUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, doctorMongoRepository, universityMongoRepository, internalConfig, log)
	authController := auth.NewAuthController(log, authUsecase)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, doctorMongoRepository, log)
	appointmentController := appointments.NewAppointmentController(log, appointmentUsecase)

	// Sessions
	sessionMongoRepository := sessions.NewSessionMongoRepository(bootstrap.MongoDB, dbName)
	sessionUsecase := sessions.NewSessionUsecase(sessionMongoRepository, doctorUsecase, userMongoRepository, mailerService, log)
	sessionController := sessions.NewSessionController(log, sessionUsecase)

	// Assessments
	assessmentUsecase := assessments.NewAssessmentUsecase(assessments.NewCatalog(), log)
	assessmentController := assessments.NewAssessmentController(log, assessmentUsecase)

	// Reports
	reportMongoRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName)
	reportUsecase := reports.NewReportUsecase(reportMongoRepository, log)
	reportController := reports.NewReportController(log, reportUsecase)

	seedAdminUser(userMongoRepository, internalConfig, log)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		m,
		authController,
		userController,
		doctorController,
		appointmentController,
		sessionController,
		assessmentController,
		universityController,
		reportController,
	)
}

// seedAdminUser creates the configured admin account on first boot. Missing
// credentials or an existing account make this a no-op.
func seedAdminUser(userRepository users.UserRepository, internalConfig *config.InternalConfig, log *zap.Logger) {
	adminEmail := internalConfig.Admin.Email
	if adminEmail == "" || internalConfig.Admin.Password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := userRepository.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Error("admin seed lookup failed", zap.Error(err))
		return
	}
	if existing != nil {
		return
	}

	hashed, err := utils.HashPassword(internalConfig.Admin.Password)
	if err != nil {
		log.Error("admin seed hashing failed", zap.Error(err))
		return
	}

	admin := &models.User{
		Name:       internalConfig.Admin.Name,
		Email:      adminEmail,
		Password:   hashed,
		Role:       constvars.RoleAdmin,
		IsVerified: true,
		IsApproved: true,
	}
	admin.SetCreatedAtUpdatedAt()

	if _, err := userRepository.CreateUser(ctx, admin); err != nil {
		log.Error("admin seed insert failed", zap.Error(err))
		return
	}
	log.Info("seeded admin account",
		zap.String("email", adminEmail),
	)
}
