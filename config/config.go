package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Delivery channels understood by DELIVERY_CHANNEL
const (
	ChannelEmailJS  = "emailjs"
	ChannelResend   = "resend"
	ChannelSendGrid = "sendgrid"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	LogLevel    string
	AppURL      string
	// Page identity, sent with every lead
	PageName   string
	DomainName string
	// Lead delivery
	DeliveryChannel string
	DeliveryTimeout time.Duration
	EmailTestMode   bool // When true, leads are logged to console instead of sent
	// EmailJS (the "Allow EmailJS API for non-browser applications" account
	// setting must be on for server-side sends)
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	EmailJSAPIURL     string
	// Resend / SendGrid
	ResendAPIKey   string
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string
	LeadRecipient  string
	// Location lookups
	ReverseGeocodeURL  string
	IPGeolocationURL   string
	GeocoderUserAgent  string
	GeolocationTimeout time.Duration // handed to the browser's position request
	LookupTimeout      time.Duration // server-side outbound lookups
	RedisURL           string
	IPCacheTTL         time.Duration
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 lead archive
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	LeadArchiveDir    string
	// Lead export
	AdminUser         string
	AdminPasswordHash string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "db/leads.db"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		PageName:           getEnv("PAGE_NAME", "Wrist Surgery"),
		DomainName:         getEnv("DOMAIN_NAME", "wristsurgery.in"),
		DeliveryChannel:    strings.ToLower(getEnv("DELIVERY_CHANNEL", ChannelEmailJS)),
		DeliveryTimeout:    getEnvDuration("DELIVERY_TIMEOUT", 15*time.Second),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		EmailJSServiceID:   getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID:  getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:   getEnv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSPrivateKey:  getEnv("EMAILJS_PRIVATE_KEY", ""),
		EmailJSAPIURL:      getEnv("EMAILJS_API_URL", "https://api.emailjs.com/api/v1.0/email/send"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@wristsurgery.in"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Wrist Surgery Appointments"),
		LeadRecipient:      getEnv("LEAD_RECIPIENT", ""),
		ReverseGeocodeURL:  getEnv("REVERSE_GEOCODE_URL", "https://nominatim.openstreetmap.org/reverse"),
		IPGeolocationURL:   getEnv("IP_GEOLOCATION_URL", "https://ipapi.co"),
		GeocoderUserAgent:  getEnv("GEOCODER_USER_AGENT", "wristsurgery.in lead form"),
		GeolocationTimeout: getEnvDuration("GEOLOCATION_TIMEOUT", 20*time.Second),
		LookupTimeout:      getEnvDuration("LOOKUP_TIMEOUT", 10*time.Second),
		RedisURL:           getEnv("REDIS_URL", ""),
		IPCacheTTL:         getEnvDuration("IP_CACHE_TTL", 6*time.Hour),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		LeadArchiveDir:     getEnv("LEAD_ARCHIVE_DIR", "data/leads"),
		AdminUser:          getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

// Validate checks that the selected delivery channel has its credentials.
// In test mode nothing is sent, so nothing is required.
func (c *Config) Validate() error {
	if c.EmailTestMode {
		return nil
	}

	var missing []string
	switch c.DeliveryChannel {
	case ChannelEmailJS:
		if c.EmailJSServiceID == "" {
			missing = append(missing, "EMAILJS_SERVICE_ID")
		}
		if c.EmailJSTemplateID == "" {
			missing = append(missing, "EMAILJS_TEMPLATE_ID")
		}
		if c.EmailJSPublicKey == "" {
			missing = append(missing, "EMAILJS_PUBLIC_KEY")
		}
	case ChannelResend:
		if c.ResendAPIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
		if c.LeadRecipient == "" {
			missing = append(missing, "LEAD_RECIPIENT")
		}
	case ChannelSendGrid:
		if c.SendGridAPIKey == "" {
			missing = append(missing, "SENDGRID_API_KEY")
		}
		if c.LeadRecipient == "" {
			missing = append(missing, "LEAD_RECIPIENT")
		}
	default:
		return fmt.Errorf("unknown DELIVERY_CHANNEL %q", c.DeliveryChannel)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration for %s delivery: %s", c.DeliveryChannel, strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration accepts Go durations ("20s") or a plain number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
	return defaultValue
}
