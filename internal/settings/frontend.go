package settings

import "github.com/storytime/storygen/pkg/config"

const (
	DefaultAPIBaseURL = "http://localhost:8787"
	DefaultAPIVersion = "v1"
)

// Frontend is the public configuration a web or mobile client build consumes.
// It holds no secrets.
type Frontend struct {
	Firebase   FirebaseClient
	RevenueCat RevenueCat
	PostHog    PostHog
	GCS        GCS
	API        API
	App        FrontendApp
	Features   FrontendFeatures
}

type FirebaseClient struct {
	ProjectID         string
	APIKey            string
	AuthDomain        string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
}

type API struct {
	BaseURL string
	Version string
}

// FrontendApp: Env comes from NEXT_PUBLIC_ENV, NodeEnv from NODE_ENV.
type FrontendApp struct {
	Env     string
	NodeEnv string
}

type FrontendFeatures struct {
	EnableAnalytics bool
	EnableTelemetry bool
}

// LoadFrontend reads the client snapshot from src.
func LoadFrontend(src config.Source) (Frontend, error) {
	r := config.NewReader(src)

	f := Frontend{
		Firebase: FirebaseClient{
			ProjectID:         r.Required("FIREBASE_PROJECT_ID"),
			APIKey:            r.Required("FIREBASE_API_KEY"),
			AuthDomain:        r.Required("FIREBASE_AUTH_DOMAIN"),
			StorageBucket:     r.Required("FIREBASE_STORAGE_BUCKET"),
			MessagingSenderID: r.Required("FIREBASE_MESSAGING_SENDER_ID"),
			AppID:             r.Required("FIREBASE_APP_ID"),
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
		},
		API: API{
			BaseURL: r.Optional("API_BASE_URL", DefaultAPIBaseURL),
			Version: r.Optional("API_VERSION", DefaultAPIVersion),
		},
		App: FrontendApp{
			Env:     r.Optional("NEXT_PUBLIC_ENV", DefaultNodeEnv),
			NodeEnv: r.Optional("NODE_ENV", DefaultNodeEnv),
		},
		Features: FrontendFeatures{
			EnableAnalytics: r.Bool("NEXT_PUBLIC_ENABLE_ANALYTICS", true),
			EnableTelemetry: r.Bool("NEXT_PUBLIC_ENABLE_TELEMETRY", false),
		},
	}
	if err := r.Err(); err != nil {
		return Frontend{}, err
	}
	return f, nil
}

// RequiredFrontendVars lists the variables LoadFrontend fails without.
func RequiredFrontendVars() []string {
	_, err := LoadFrontend(config.MapEnv{})
	return config.MissingKeys(err)
}
