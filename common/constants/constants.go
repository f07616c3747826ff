package constants

const (
	AppName         = "virpe"
	AppDir          = ".virpe"
	DatabaseFile    = "history.db"
	ConfigFile      = "config.yaml"
	EventBusQueue   = 1000
	DefaultHistory  = 20
	DefaultLogLevel = "WARN"
)
