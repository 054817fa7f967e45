package models

// SiteConfig is the clinic profile used for structured data and contact details.
type SiteConfig struct {
	Name          string   `yaml:"name"`
	AlternateName string   `yaml:"alternate_name"`
	BaseURL       string   `yaml:"base_url"`
	Logo          string   `yaml:"logo"`
	Image         string   `yaml:"image"`
	PriceRange    string   `yaml:"price_range"`
	Physician     string   `yaml:"physician"`
	Address       Address  `yaml:"address"`
	Geo           Geo      `yaml:"geo"`
	Specialties   []string `yaml:"specialties"`
	Services      []string `yaml:"services"`
	SameAs        []string `yaml:"same_as"`
	KnowsLanguage []string `yaml:"knows_language"`
}

type Address struct {
	Street   string `yaml:"street"`
	Locality string `yaml:"locality"`
	Region   string `yaml:"region"`
	Postal   string `yaml:"postal"`
	Country  string `yaml:"country"`
}

type Geo struct {
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}
