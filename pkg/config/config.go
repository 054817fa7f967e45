package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	Env           = "development"
	ListenAddr    = ":8080"
	SessionSecret = "change-me-session-secret"

	DefaultLanguage = "en"

	// Contact settings
	WhatsAppNumber = "905539362222"
	PhoneNumber    = "+905539362222"
	ContactEmail   = "info@doctorramdoun.com"

	// Content settings
	SiteConfigPath = "./site.yaml"
	PostsJSONPath  = "./data/blog-posts.json"
	ContentDir     = "./content"
	BlogImageDir   = "./public/blog-images"
	BlogImageURL   = "/blog-images/"
	PrimaryPosts   = 3

	// Sanity settings
	SanityProjectID  = ""
	SanityDataset    = ""
	SanityAPIVersion = "2023-12-15"
	SanityUseCDN     = true
	SanityToken      = ""
	CMSTimeout       = 10 * time.Second
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	Env = getEnv("APP_ENV", "development")
	ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	SessionSecret = getEnv("SESSION_SECRET", "change-me-session-secret")
	DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "en")

	WhatsAppNumber = getEnv("WHATSAPP_NUMBER", "905539362222")
	PhoneNumber = getEnv("PHONE_NUMBER", "+"+WhatsAppNumber)
	ContactEmail = getEnv("CONTACT_EMAIL", "info@doctorramdoun.com")

	SiteConfigPath = getEnv("SITE_CONFIG", "./site.yaml")
	PostsJSONPath = getEnv("POSTS_JSON", "./data/blog-posts.json")
	ContentDir = getEnv("CONTENT_DIR", "./content")
	BlogImageDir = getEnv("BLOG_IMAGE_DIR", "./public/blog-images")

	SanityProjectID = getEnv("SANITY_PROJECT_ID", "")
	SanityDataset = getEnv("SANITY_DATASET", "")
	SanityAPIVersion = getEnv("SANITY_API_VERSION", "2023-12-15")
	SanityToken = getEnv("SANITY_TOKEN", "")

	if v := os.Getenv("SANITY_USE_CDN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			SanityUseCDN = b
		}
	}

	if v := os.Getenv("CMS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			CMSTimeout = d
		}
	}

	if v := os.Getenv("PRIMARY_POSTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			PrimaryPosts = n
		}
	}
}

// SanityEnabled reports whether the hosted content source is configured.
func SanityEnabled() bool {
	return SanityProjectID != "" && SanityDataset != ""
}

// GetAppURL is the public base URL override; empty keeps the one from site.yaml.
func GetAppURL() string {
	return strings.TrimRight(os.Getenv("APP_URL"), "/")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
