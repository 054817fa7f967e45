package services

import (
	"net/url"
	"strings"
)

const whatsAppBase = "https://wa.me/"

// WhatsAppLink builds the chat deep link, with a pre-filled message when text is set.
func WhatsAppLink(number, text string) string {
	link := whatsAppBase + digits(number)
	if text == "" {
		return link
	}
	return link + "?text=" + encodeURIComponent(text)
}

// CallLink is empty when number has no digits.
func CallLink(number string) string {
	d := digits(number)
	if d == "" {
		return ""
	}
	return "tel:+" + d
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeURIComponent escapes spaces as %20, which chat apps expect instead of '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
