package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"clinic-site/pkg/models"

	"gopkg.in/yaml.v3"
)

func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean("/" + target)
	if strings.Contains(cleanTarget, "..") {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// DefaultSiteConfig is used when no site.yaml is present.
func DefaultSiteConfig() *models.SiteConfig {
	return &models.SiteConfig{
		Name:          "Dr. Ramdoun - Expert Physiotherapy & Rehab Center",
		AlternateName: "Dr. Ramdoun Clinic",
		BaseURL:       "https://doctorramdoun.com",
		Logo:          "/doctorramdoun-logo.svg",
		Image:         "/dr-ramdoun-final.webp",
		PriceRange:    "$$",
		Physician:     "Dr. Ramdoun",
		Address: models.Address{
			Street:   "Ataköy 7-8-9-10. Kısım Mah. Çobançeşme E-5 Yan Yol Cad., Ataköy Towers B Blok No: 20/1, İç Kapı No: 110",
			Locality: "Bakırköy",
			Region:   "Istanbul",
			Postal:   "34158",
			Country:  "TR",
		},
		Geo: models.Geo{Latitude: "40.9888", Longitude: "28.8344"},
		Specialties: []string{
			"Physiotherapy",
			"Neurological Rehabilitation",
			"Orthopedic Rehabilitation",
			"Deep Brain Stimulation (DBS) Support",
		},
		Services: []string{"Neurological Rehabilitation", "Orthopedic Rehabilitation", "Manual Therapy"},
		SameAs: []string{
			"https://www.facebook.com/Dr.Ramdoun",
			"https://www.instagram.com/dr.ramdoun",
			"https://www.youtube.com/@DrRamdoun",
		},
		KnowsLanguage: []string{"English", "Arabic", "Turkish"},
	}
}

// LoadSiteConfig reads the clinic profile; a missing file yields the defaults.
// Fields left empty in the file keep their default values.
func LoadSiteConfig(path string) (*models.SiteConfig, error) {
	cfg := DefaultSiteConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
