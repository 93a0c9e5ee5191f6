package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "CATALOG"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "CATALOG_DB_DSN"
	EnvDBHost = "CATALOG_DB_HOST"
	EnvDBUser = "CATALOG_DB_USER"
	EnvDBName = "CATALOG_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
