package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App App
}

type App struct {
	Env                           string
	Port                          string
	Version                       string
	Address                       string
	Timezone                      string
	EndpointPrefix                string
	MaxRequests                   int
	MaxTimeRequestsPerSeconds     int
	ShutdownTimeout               int
	RequestBodyLimitInMegabyte    int
	AvailabilityWindowDays        int
	AvailabilityCacheTTLInSeconds int
}
