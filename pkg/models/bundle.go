package models

// Bundle is the full set of user-facing strings for one language.
type Bundle struct {
	Name         string           `yaml:"name" json:"name"`
	SEO          SEOText          `yaml:"seo" json:"seo"`
	Nav          NavText          `yaml:"nav" json:"nav"`
	Hero         HeroText         `yaml:"hero" json:"hero"`
	Services     ServicesText     `yaml:"services" json:"services"`
	Assessment   AssessmentText   `yaml:"assessment" json:"assessment"`
	Process      ProcessText      `yaml:"process" json:"process"`
	Profile      ProfileText      `yaml:"profile" json:"profile"`
	Testimonials TestimonialsText `yaml:"testimonials" json:"testimonials"`
	FAQ          FAQText          `yaml:"faq" json:"faq"`
	Contact      ContactText      `yaml:"contact" json:"contact"`
	Blog         BlogText         `yaml:"blog" json:"blog"`
	Footer       FooterText       `yaml:"footer" json:"footer"`
}

type SEOText struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type NavText struct {
	About    string `yaml:"about" json:"about"`
	Services string `yaml:"services" json:"services"`
	Process  string `yaml:"process" json:"process"`
	Stories  string `yaml:"stories" json:"stories"`
	Blog     string `yaml:"blog" json:"blog"`
	FAQ      string `yaml:"faq" json:"faq"`
	Contact  string `yaml:"contact" json:"contact"`
	WhatsApp string `yaml:"whatsapp" json:"whatsapp"`
	Language string `yaml:"language" json:"language"`
}

type HeroText struct {
	EyebrowPatients string   `yaml:"eyebrow_patients" json:"eyebrow_patients"`
	EyebrowClinic   string   `yaml:"eyebrow_clinic" json:"eyebrow_clinic"`
	TitleStart      string   `yaml:"title_start" json:"title_start"`
	TitleHighlight  string   `yaml:"title_highlight" json:"title_highlight"`
	TitleEnd        string   `yaml:"title_end" json:"title_end"`
	Description     string   `yaml:"description" json:"description"`
	Tagline         string   `yaml:"tagline" json:"tagline"`
	CTAWhatsApp     string   `yaml:"cta_whatsapp" json:"cta_whatsapp"`
	CTAAssess       string   `yaml:"cta_assess" json:"cta_assess"`
	Badges          []string `yaml:"badges" json:"badges"`
	AgentName       string   `yaml:"agent_name" json:"agent_name"`
	AgentStatus     string   `yaml:"agent_status" json:"agent_status"`
	AgentMessage    string   `yaml:"agent_msg" json:"agent_msg"`
}

type ServicesText struct {
	Heading    string        `yaml:"heading" json:"heading"`
	Subheading string        `yaml:"subheading" json:"subheading"`
	ChatButton string        `yaml:"chat_btn" json:"chat_btn"`
	Items      []ServiceItem `yaml:"items" json:"items"`
}

type ServiceItem struct {
	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle" json:"subtitle"`
	Note     string   `yaml:"note" json:"note"`
	Benefits []string `yaml:"benefits" json:"benefits"`
}

type AssessmentText struct {
	Badge        string     `yaml:"badge" json:"badge"`
	TriggerTitle string     `yaml:"trigger_title" json:"trigger_title"`
	TriggerDesc  string     `yaml:"trigger_desc" json:"trigger_desc"`
	ButtonStart  string     `yaml:"btn_start" json:"btn_start"`
	ButtonClose  string     `yaml:"btn_close" json:"btn_close"`
	Step         string     `yaml:"step" json:"step"`
	Of           string     `yaml:"of" json:"of"`
	Questions    []Question `yaml:"questions" json:"questions"`
	ResultTitle  string     `yaml:"result_title" json:"result_title"`
	ResultDesc   string     `yaml:"result_desc" json:"result_desc"`
	SummaryTitle string     `yaml:"summary_title" json:"summary_title"`
	ButtonSend   string     `yaml:"btn_send" json:"btn_send"`
	ButtonRetake string     `yaml:"btn_retake" json:"btn_retake"`
	Quote        string     `yaml:"quote" json:"quote"`
}

// Question is one step of the assessment wizard.
type Question struct {
	Question string   `yaml:"question" json:"question"`
	Options  []string `yaml:"options" json:"options"`
}

// HasOption reports whether option is one of the listed choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

type ProcessText struct {
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Steps       []TextItem `yaml:"steps" json:"steps"`
	CTATitle    string     `yaml:"cta_title" json:"cta_title"`
	CTADesc     string     `yaml:"cta_desc" json:"cta_desc"`
	CTAButton   string     `yaml:"cta_btn" json:"cta_btn"`
}

type TextItem struct {
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

type ProfileText struct {
	Eyebrow      string    `yaml:"eyebrow" json:"eyebrow"`
	Name         string    `yaml:"name" json:"name"`
	Bio          []string  `yaml:"bio" json:"bio"`
	Stats        StatsText `yaml:"stats" json:"stats"`
	Intro        string    `yaml:"intro" json:"intro"`
	Bullets      []string  `yaml:"bullets" json:"bullets"`
	MissionTitle string    `yaml:"mission_title" json:"mission_title"`
	MissionDesc  string    `yaml:"mission_desc" json:"mission_desc"`
	TeamTitle    string    `yaml:"team_title" json:"team_title"`
	TeamDesc     string    `yaml:"team_desc" json:"team_desc"`
	FooterQuote  string    `yaml:"footer_quote" json:"footer_quote"`
}

type StatsText struct {
	Experience string `yaml:"exp" json:"exp"`
	Procedures string `yaml:"proc" json:"proc"`
	Awards     string `yaml:"awards" json:"awards"`
}

type TestimonialsText struct {
	Title    string        `yaml:"title" json:"title"`
	Subtitle string        `yaml:"subtitle" json:"subtitle"`
	Items    []Testimonial `yaml:"items" json:"items"`
}

type Testimonial struct {
	Name     string `yaml:"name" json:"name"`
	Location string `yaml:"location" json:"location"`
	Text     string `yaml:"text" json:"text"`
}

type FAQText struct {
	Badge     string    `yaml:"badge" json:"badge"`
	Title     string    `yaml:"title" json:"title"`
	Desc      string    `yaml:"desc" json:"desc"`
	AskButton string    `yaml:"ask_btn" json:"ask_btn"`
	Items     []FAQItem `yaml:"items" json:"items"`
}

type FAQItem struct {
	Q string `yaml:"q" json:"q"`
	A string `yaml:"a" json:"a"`
}

type ContactText struct {
	Title      string `yaml:"title" json:"title"`
	Desc       string `yaml:"desc" json:"desc"`
	Email      string `yaml:"email" json:"email"`
	HoursTitle string `yaml:"hours_title" json:"hours_title"`
	HoursValue string `yaml:"hours_val" json:"hours_val"`
	HoursNote  string `yaml:"hours_note" json:"hours_note"`
	ButtonWA   string `yaml:"btn_wa" json:"btn_wa"`
	WANote     string `yaml:"wa_note" json:"wa_note"`
	ButtonCall string `yaml:"btn_call" json:"btn_call"`
	FooterNote string `yaml:"footer_note" json:"footer_note"`
}

type BlogText struct {
	Title       string   `yaml:"title" json:"title"`
	ReadMore    string   `yaml:"read_more" json:"read_more"`
	Close       string   `yaml:"close" json:"close"`
	Untitled    string   `yaml:"untitled" json:"untitled"`
	Placeholder string   `yaml:"placeholder" json:"placeholder"`
	MoreTitle   string   `yaml:"more_title" json:"more_title"`
	Months      []string `yaml:"months" json:"months"`
}

type FooterText struct {
	Desc    string `yaml:"desc" json:"desc"`
	Menu    string `yaml:"menu" json:"menu"`
	Connect string `yaml:"connect" json:"connect"`
	Rights  string `yaml:"rights" json:"rights"`
}
