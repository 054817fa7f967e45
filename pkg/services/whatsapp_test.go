package services

import "testing"

func TestWhatsAppLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		number string
		text   string
		want   string
	}{
		{"905539362222", "", "https://wa.me/905539362222"},
		{"+90 553 936 22 22", "", "https://wa.me/905539362222"},
		{"905539362222", "Hi there", "https://wa.me/905539362222?text=Hi%20there"},
		{"905539362222", "a+b&c\n", "https://wa.me/905539362222?text=a%2Bb%26c%0A"},
	}
	for _, tt := range tests {
		if got := WhatsAppLink(tt.number, tt.text); got != tt.want {
			t.Fatalf("WhatsAppLink(%q, %q) = %q, want %q", tt.number, tt.text, got, tt.want)
		}
	}
}

func TestCallLink(t *testing.T) {
	t.Parallel()

	if got := CallLink("+90 (553) 936-2222"); got != "tel:+905539362222" {
		t.Fatalf("CallLink = %q", got)
	}
	if got := CallLink(""); got != "" {
		t.Fatalf("CallLink(\"\") = %q, want empty", got)
	}
}
