package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Query reasons appended to redirects so the target page can explain itself.
const (
	ReasonDuplicateSession = "duplicate_session"
	ReasonActivate         = "activate"
	ReasonRenew            = "renew"
)

const (
	LoginPath          = "/login/"
	ActivatePath       = "/key/activate/"
	SessionEndedPath   = "/session-ended/"
	DownloadLandingURL = "/download.html"
)
