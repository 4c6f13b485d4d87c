// Package settings builds the typed configuration snapshots of the Story
// Generator backend and of the client builds that talk to it.
package settings

import (
	"strconv"

	"github.com/storytime/storygen/pkg/config"
)

// Defaults shared by both variants.
const (
	DefaultPostHogHost = "https://app.posthog.com"
	DefaultNodeEnv     = "development"
	DefaultPort        = 8787
)

// Backend is the configuration snapshot of the API service.
type Backend struct {
	Firebase   FirebaseAdmin
	RevenueCat RevenueCat
	PostHog    PostHog
	GCS        GCS
	Cloudflare Cloudflare
	AI         AI
	App        BackendApp
	Security   Security
	Database   Database
	Features   BackendFeatures
}

type FirebaseAdmin struct {
	ProjectID   string
	PrivateKey  string
	ClientEmail string
	DatabaseURL string
}

type RevenueCat struct {
	Key string
}

type PostHog struct {
	APIKey string
	Host   string
}

// GCS describes the Cloud Storage bucket. ProjectID is only read by the backend.
type GCS struct {
	BucketName string
	ProjectID  string
}

type Cloudflare struct {
	AccountID string
	APIToken  string
}

type AI struct {
	APIKey string
	APIURL string
}

// BackendApp carries the runtime environment. Env and NodeEnv are both read
// from NODE_ENV.
type BackendApp struct {
	Env     string
	NodeEnv string
	Port    int
}

type Security struct {
	JWTSecret     string
	EncryptionKey string
}

type Database struct {
	URL string
}

type BackendFeatures struct {
	EnableAnalytics    bool
	EnableTelemetry    bool
	EnableDebugLogging bool
}

// LoadBackend reads the backend snapshot from src. All missing required
// variables are reported together; see config.MissingKeys.
func LoadBackend(src config.Source) (Backend, error) {
	r := config.NewReader(src)
	nodeEnv := r.Optional("NODE_ENV", DefaultNodeEnv)

	b := Backend{
		Firebase: FirebaseAdmin{
			ProjectID:   r.Required("FIREBASE_PROJECT_ID"),
			PrivateKey:  r.Required("FIREBASE_PRIVATE_KEY"),
			ClientEmail: r.Required("FIREBASE_CLIENT_EMAIL"),
			DatabaseURL: r.Required("FIREBASE_DATABASE_URL"),
		},
		RevenueCat: RevenueCat{
			Key: r.Required("REVENUECAT_KEY"),
		},
		PostHog: PostHog{
			APIKey: r.Required("POSTHOG_API_KEY"),
			Host:   r.Optional("POSTHOG_HOST", DefaultPostHogHost),
		},
		GCS: GCS{
			BucketName: r.Required("GCS_BUCKET_NAME"),
			ProjectID:  r.Required("GCS_PROJECT_ID"),
		},
		Cloudflare: Cloudflare{
			AccountID: r.Required("CLOUDFLARE_ACCOUNT_ID"),
			APIToken:  r.Required("CLOUDFLARE_API_TOKEN"),
		},
		AI: AI{
			APIKey: r.Required("AI_API_KEY"),
			APIURL: r.Required("AI_API_URL"),
		},
		App: BackendApp{
			Env:     nodeEnv,
			NodeEnv: nodeEnv,
			Port:    r.Int("PORT", DefaultPort),
		},
		Security: Security{
			JWTSecret:     r.Required("JWT_SECRET"),
			EncryptionKey: r.Required("ENCRYPTION_KEY"),
		},
		Database: Database{
			URL: r.Required("DATABASE_URL"),
		},
		Features: BackendFeatures{
			EnableAnalytics:    r.Bool("ENABLE_ANALYTICS", true),
			EnableTelemetry:    r.Bool("ENABLE_TELEMETRY", false),
			EnableDebugLogging: r.Bool("ENABLE_DEBUG_LOGGING", true),
		},
	}
	if err := r.Err(); err != nil {
		return Backend{}, err
	}
	return b, nil
}

// Addr is the listen address for the HTTP server.
func (b Backend) Addr() string {
	return ":" + strconv.Itoa(b.App.Port)
}

// RequiredBackendVars lists the variables LoadBackend fails without, in the
// order LoadBackend reads them.
func RequiredBackendVars() []string {
	_, err := LoadBackend(config.MapEnv{})
	return config.MissingKeys(err)
}
