package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin accepts "*" or an origin of the form scheme://host[:port]
// with an http or https scheme. Paths (including a trailing "/"), queries,
// fragments and user info are rejected.
func ValidateCORSOrigin(origin string) error {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "*" {
		return nil
	}

	if trimmed == "" {
		return fmt.Errorf("CORS origin must not be empty")
	}

	if strings.HasSuffix(trimmed, "/") {
		return fmt.Errorf("CORS origin must not end with '/' (input=%q)", trimmed)
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("CORS origin is not a valid URL (input=%q): %w", trimmed, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS origin scheme must be http or https (input=%q)", trimmed)
	}
	if u.Path != "" {
		return fmt.Errorf("CORS origin must not contain a path (input=%q)", trimmed)
	}
	if u.RawQuery != "" {
		return fmt.Errorf("CORS origin must not contain a query (input=%q)", trimmed)
	}
	if u.Fragment != "" {
		return fmt.Errorf("CORS origin must not contain a fragment (input=%q)", trimmed)
	}
	if u.User != nil {
		return fmt.Errorf("CORS origin must not contain credentials (input=%q)", trimmed)
	}

	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("CORS origin port is not a number (input=%q, port=%s)", trimmed, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS origin port: %w (input=%q)", err, trimmed)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS origin has no host (input=%q)", trimmed)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS origin host: %w", err)
	}

	return nil
}

// ValidatePort checks 1 <= port <= 65535.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port out of range 1-65535 (port=%d)", port)
	}
	return nil
}

// ValidateHostname accepts localhost, IPv4/IPv6 literals and RFC 1123 host
// names whose top-level label is not purely numeric.
func ValidateHostname(host string) error {
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("hostname longer than 253 characters (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("hostname contains an empty label (host=%q)", host)
		}
		if len(label) > 63 {
			return fmt.Errorf("hostname label longer than 63 characters (label=%q)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("hostname label must not start or end with '-' (label=%q)", label)
		}
		for _, r := range label {
			ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
			if !ok {
				return fmt.Errorf("hostname contains invalid character %q (host=%q)", r, host)
			}
		}
	}

	tld := labels[len(labels)-1]
	if strings.Trim(tld, "0123456789") == "" {
		return fmt.Errorf("top-level label must not be numeric (tld=%q)", tld)
	}

	return nil
}
