package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	InternalConfig struct {
		App    App
		JWT    JWT
		Mailer AppMailer
		Minio  AppMinio
		Admin  AppAdmin
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		BaseUrl                    string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		RabbitMQMailerQueue        string
		MailerRatePerSecond        int
		UpcomingAvailabilityDays   int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMailer struct {
		EmailSender string
	}

	AppMinio struct {
		BucketName                      string
		ProfilePictureMaxUploadSizeInMB int64
		PreSignedUrlExpiryTimeInHours   int
	}

	// AppAdmin seeds the first admin account when the users collection has
	// no admin yet.
	AppAdmin struct {
		Name     string
		Email    string
		Password string
	}
)
