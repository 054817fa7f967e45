package services

import (
	"encoding/json"
	"strings"

	"clinic-site/pkg/models"
)

// SchemaGraph builds the JSON-LD objects describing the clinic, the physician
// and the current page.
func SchemaGraph(site *models.SiteConfig, loc *Locale) []map[string]any {
	base := strings.TrimRight(site.BaseURL, "/")
	image := absoluteURL(base, site.Image)

	org := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "MedicalOrganization",
		"@id":           base + "/#organization",
		"name":          site.Name,
		"alternateName": site.AlternateName,
		"url":           base,
		"logo": map[string]any{
			"@type": "ImageObject",
			"url":   absoluteURL(base, site.Logo),
		},
		"image":       image,
		"description": loc.Bundle.SEO.Description,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   site.Address.Street,
			"addressLocality": site.Address.Locality,
			"addressRegion":   site.Address.Region,
			"postalCode":      site.Address.Postal,
			"addressCountry":  site.Address.Country,
		},
		"geo": map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  site.Geo.Latitude,
			"longitude": site.Geo.Longitude,
		},
		"priceRange":       site.PriceRange,
		"medicalSpecialty": site.Specialties,
		"sameAs":           site.SameAs,
	}

	services := make([]map[string]any, 0, len(site.Services))
	for _, name := range site.Services {
		services = append(services, map[string]any{"@type": "MedicalTherapy", "name": name})
	}
	org["availableService"] = services

	physician := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Physician",
		"@id":           base + "/#physician",
		"name":          site.Physician,
		"url":           base + "/#profile",
		"image":         image,
		"worksFor":      map[string]any{"@id": base + "/#organization"},
		"knowsLanguage": site.KnowsLanguage,
	}
	if len(site.Specialties) > 0 {
		physician["medicalSpecialty"] = site.Specialties[0]
	}

	page := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "MedicalWebPage",
		"@id":         base + "/#webpage",
		"url":         base,
		"name":        loc.Bundle.SEO.Title,
		"description": loc.Bundle.SEO.Description,
		"inLanguage":  string(loc.Language),
		"primaryImageOfPage": map[string]any{
			"@type": "ImageObject",
			"url":   image,
		},
		"isPartOf": map[string]any{"@id": base + "/#organization"},
		"about":    map[string]any{"@id": base + "/#physician"},
	}

	return []map[string]any{org, physician, page}
}

// SchemaJSON encodes the graph; json.Marshal escapes '<' so the output is safe
// inside a script element.
func SchemaJSON(site *models.SiteConfig, loc *Locale) (string, error) {
	data, err := json.Marshal(SchemaGraph(site, loc))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func absoluteURL(base, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return base + "/" + strings.TrimLeft(ref, "/")
}
