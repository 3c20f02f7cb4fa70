package sanitize

import "testing"

func TestText_Empty(t *testing.T) {
	if got := Text(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestText_PlainText(t *testing.T) {
	if got := Text("Acme Bio Labs"); got != "Acme Bio Labs" {
		t.Errorf("plain text should pass through, got %q", got)
	}
}

func TestText_StripsMarkup(t *testing.T) {
	if got := Text(`<script>alert('x')</script>Acme`); got != "Acme" {
		t.Errorf("script should be removed, got %q", got)
	}
	if got := Text("<b>Acme</b>"); got != "Acme" {
		t.Errorf("tags should be stripped, got %q", got)
	}
}

func TestTextPtr(t *testing.T) {
	if TextPtr(nil) != nil {
		t.Error("nil should stay nil")
	}

	dirty := "<i>42 Lab St</i>"
	clean := TextPtr(&dirty)
	if clean == nil || *clean != "42 Lab St" {
		t.Errorf("got %v", clean)
	}
}
