package auth

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"standard", "Bearer sekrit", "sekrit"},
		{"lowercase scheme", "bearer sekrit", "sekrit"},
		{"mixed case scheme", "BeArEr sekrit", "sekrit"},
		{"trailing space", "Bearer sekrit  ", "sekrit"},
		{"empty header", "", ""},
		{"no scheme", "sekrit", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
		{"scheme only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBearer(tt.header); got != tt.want {
				t.Errorf("ParseBearer(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := ContextWithToken(context.Background(), "tok")
	if got := TokenFromContext(ctx); got != "tok" {
		t.Errorf("Expected token 'tok', got %q", got)
	}

	if got := TokenFromContext(context.Background()); got != "" {
		t.Errorf("Expected empty token from bare context, got %q", got)
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("POST", "/mcp", nil)
	r.Header.Set("Authorization", "Bearer wire-token")

	ctx := FromRequest(context.Background(), r)
	if got := TokenFromContext(ctx); got != "wire-token" {
		t.Errorf("Expected 'wire-token', got %q", got)
	}

	// No header stores the empty string
	bare := httptest.NewRequest("POST", "/mcp", nil)
	ctx = FromRequest(context.Background(), bare)
	if got := TokenFromContext(ctx); got != "" {
		t.Errorf("Expected empty token without header, got %q", got)
	}
}

func TestEqual(t *testing.T) {
	if !Equal("same", "same") {
		t.Error("Equal tokens should match")
	}
	if Equal("same", "different") {
		t.Error("Different tokens should not match")
	}
	if Equal("same", "sam") {
		t.Error("Prefix should not match")
	}
	if !Equal("", "") {
		t.Error("Two empty strings compare equal; callers must never configure an empty secret")
	}
}
