package url

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "uppercase scheme unchanged", input: "HTTPS://example.com", want: "HTTPS://example.com"},
		{name: "file scheme unchanged", input: "file:///tmp/page.html", want: "file:///tmp/page.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "search query unchanged", input: "hello world", want: "hello world"},
		{name: "single word unchanged", input: "golang", want: "golang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"github.com", true},
		{"google.com/search", true},
		{"https://x", true},
		{"about:blank", true},
		{"how to parse json", false},
		{"v1.2 release notes", false},
		{"localhost", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := LooksLikeURL(tt.input); got != tt.want {
				t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseWindowURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "https", input: "https://example.com"},
		{name: "http with path", input: "http://example.com/a?b=c"},
		{name: "surrounding spaces", input: "  https://example.com  "},
		{name: "file", input: "file:///tmp/index.html"},
		{name: "about", input: "about:blank"},
		{name: "empty", input: "", wantErr: true},
		{name: "no scheme", input: "example.com", wantErr: true},
		{name: "https without host", input: "https://", wantErr: true},
		{name: "unsupported scheme", input: "javascript:alert(1)", wantErr: true},
		{name: "bad escape", input: "https://exa mple.com/%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseWindowURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWindowURL(%q) expected error, got %v", tt.input, u)
				}
				if !errors.Is(err, ErrMalformedURL) {
					t.Errorf("error %v does not wrap ErrMalformedURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindowURL(%q) unexpected error: %v", tt.input, err)
			}
			if u == nil {
				t.Fatalf("ParseWindowURL(%q) returned nil URL", tt.input)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.youtube.com/watch?v=1", "youtube.com"},
		{"https://github.com:443/bnema", "github.com"},
		{"about:blank", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExtractDomain(tt.input); got != tt.want {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
