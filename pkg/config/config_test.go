package config

import (
	"testing"
	"time"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("WHATSAPP_NUMBER", "15550001111")
	t.Setenv("DEFAULT_LANGUAGE", "ar")
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_DATASET", "production")
	t.Setenv("SANITY_USE_CDN", "false")
	t.Setenv("CMS_TIMEOUT", "3s")
	t.Setenv("PRIMARY_POSTS", "5")

	Init()

	if WhatsAppNumber != "15550001111" {
		t.Fatalf("WhatsAppNumber = %q, want %q", WhatsAppNumber, "15550001111")
	}
	if PhoneNumber != "+15550001111" {
		t.Fatalf("PhoneNumber = %q, want %q", PhoneNumber, "+15550001111")
	}
	if DefaultLanguage != "ar" {
		t.Fatalf("DefaultLanguage = %q, want ar", DefaultLanguage)
	}
	if !SanityEnabled() {
		t.Fatal("SanityEnabled() = false, want true")
	}
	if SanityUseCDN {
		t.Fatal("SanityUseCDN = true, want false")
	}
	if CMSTimeout != 3*time.Second {
		t.Fatalf("CMSTimeout = %v, want 3s", CMSTimeout)
	}
	if PrimaryPosts != 5 {
		t.Fatalf("PrimaryPosts = %d, want 5", PrimaryPosts)
	}
}

func TestInitIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("SANITY_DATASET", "")
	t.Setenv("CMS_TIMEOUT", "soon")
	t.Setenv("PRIMARY_POSTS", "-2")

	CMSTimeout = 10 * time.Second
	PrimaryPosts = 3
	Init()

	if SanityEnabled() {
		t.Fatal("SanityEnabled() = true, want false")
	}
	if CMSTimeout != 10*time.Second {
		t.Fatalf("CMSTimeout = %v, want 10s", CMSTimeout)
	}
	if PrimaryPosts != 3 {
		t.Fatalf("PrimaryPosts = %d, want 3", PrimaryPosts)
	}
}

func TestGetAppURLTrimsSlash(t *testing.T) {
	t.Setenv("APP_URL", "https://example.org/")
	if got := GetAppURL(); got != "https://example.org" {
		t.Fatalf("GetAppURL() = %q, want %q", got, "https://example.org")
	}
}
