package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultCSRFCookieName is the cookie the backend stores its CSRF token in.
const DefaultCSRFCookieName = "csrftoken"

// csrfHeader carries the CSRF token on mutating requests.
const csrfHeader = "X-CSRFToken"

// ParseCookieHeader parses a raw Cookie header value ("a=1; b=2").
// An empty header yields no cookies.
func ParseCookieHeader(header string) ([]*http.Cookie, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, nil
	}

	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil, fmt.Errorf("parse cookie header: %w", err)
	}

	return cookies, nil
}

// CSRFToken returns the value of the named cookie, or "" when absent.
func CSRFToken(cookies []*http.Cookie, name string) string {
	if name == "" {
		name = DefaultCSRFCookieName
	}

	for _, c := range cookies {
		if c.Name == name {
			return c.Value
		}
	}

	return ""
}
