package config

// EnvPrefix is passed to envconfig; individual tags spell the full names so
// the prefix stays empty here and the variables remain greppable.
const EnvPrefix = ""

// App environments recognized by the platform.
const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv = "STORECRAFT_APP_ENV"
	EnvPort   = "STORECRAFT_APP_PORT"

	EnvDBDSN  = "STORECRAFT_DB_DSN"
	EnvDBHost = "STORECRAFT_DB_HOST"
	EnvDBUser = "STORECRAFT_DB_USER"
	EnvDBName = "STORECRAFT_DB_NAME"

	EnvRedisURL = "STORECRAFT_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
