// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns gateway failures into messages an owner can act on.
// Connectivity problems are classified from the net and tls error types; backend
// answers are mapped from their HTTP status.
package httperrors

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"

	apperrors "restaurantai/cli/internal/errors"

	"github.com/pterm/pterm"
)

// Category is the kind of connectivity failure.
type Category int

const (
	Generic Category = iota
	Timeout
	DNS
	Refused
	TLS
)

func (c Category) String() string {
	switch c {
	case Timeout:
		return "timeout"
	case DNS:
		return "dns"
	case Refused:
		return "refused"
	case TLS:
		return "tls"
	default:
		return "generic"
	}
}

// Classify inspects the error chain of a transport failure.
func Classify(err error) Category {
	var (
		dnsErr  *net.DNSError
		netErr  net.Error
		certErr *tls.CertificateVerificationError
		unknown x509.UnknownAuthorityError
		hostErr x509.HostnameError
		invalid x509.CertificateInvalidError
		recErr  tls.RecordHeaderError
	)
	switch {
	case err == nil:
		return Generic
	case errors.As(err, &dnsErr):
		return DNS
	case errors.Is(err, syscall.ECONNREFUSED):
		return Refused
	case errors.As(err, &certErr), errors.As(err, &unknown), errors.As(err, &hostErr),
		errors.As(err, &invalid), errors.As(err, &recErr):
		return TLS
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return Timeout
	}
	return Generic
}

// NetworkHints returns the headline and suggestions shown for a category.
func NetworkHints(c Category, action, host string) (headline string, hints []string) {
	switch c {
	case Timeout:
		return fmt.Sprintf("⏱️  Connection timeout while %s", action), []string{
			"The backend may be busy generating advice",
			"Check your network connection and try again",
		}
	case DNS:
		return fmt.Sprintf("🌐 Cannot resolve %s while %s", host, action), []string{
			"Check the API endpoint (restaurantai config show)",
			"Check that your DNS settings work",
		}
	case Refused:
		return fmt.Sprintf("🚫 Connection refused by %s while %s", host, action), []string{
			"Is the backend running? The default is http://localhost:8000",
			"Set another endpoint with --api-endpoint or restaurantai config set-endpoint",
		}
	case TLS:
		return fmt.Sprintf("🔒 Secure connection to %s failed while %s", host, action), []string{
			"Check the server certificate and your system clock",
			"A proxy may be intercepting HTTPS traffic",
		}
	default:
		return fmt.Sprintf("❌ Cannot reach %s while %s", host, action), []string{
			"Check your network connection",
			"Check the API endpoint (restaurantai config show)",
		}
	}
}

// FormatNetworkError prints a connectivity message for err and returns it wrapped.
func FormatNetworkError(err error, action, endpoint string) error {
	if err == nil {
		return nil
	}
	headline, hints := NetworkHints(Classify(err), action, ExtractHostFromURL(endpoint))
	pterm.Println(headline)
	items := make([]pterm.BulletListItem, 0, len(hints))
	for _, h := range hints {
		items = append(items, pterm.BulletListItem{Level: 1, Text: h})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
	pterm.Debug.Printfln("Technical details: %v", err)
	return fmt.Errorf("network error: %w", err)
}

// StatusMessage maps a non-2xx status to an owner-facing sentence. notFound replaces
// the generic 404 text for resources with a better name.
func StatusMessage(status int, detail, notFound string) string {
	switch {
	case status == http.StatusUnauthorized:
		return "Your session has expired or you are not logged in. Run 'restaurantai login'."
	case status == http.StatusForbidden:
		return "You do not have access to this resource."
	case status == http.StatusNotFound:
		if notFound != "" {
			return notFound
		}
		return "Not found."
	case status >= 500:
		return "The backend ran into an error. Please try again in a few minutes."
	case detail != "":
		return detail
	case status == http.StatusBadRequest:
		return "The request was rejected."
	default:
		return fmt.Sprintf("Request failed (%d %s).", status, http.StatusText(status))
	}
}

// Present reports err according to its kind and returns the error to exit with.
func Present(err error, action, endpoint, notFound string) error {
	if err == nil {
		return nil
	}
	switch apperrors.KindOf(err) {
	case apperrors.Transport:
		return FormatNetworkError(err, action, endpoint)
	case apperrors.HTTP:
		var e *apperrors.E
		detail := ""
		if errors.As(err, &e) && e.Message != http.StatusText(e.Status) {
			detail = e.Message
		}
		pterm.Error.Println(StatusMessage(apperrors.StatusOf(err), detail, notFound))
	case apperrors.Decode:
		pterm.Error.Printfln("The backend sent a response the CLI could not read while %s.", action)
	default:
		pterm.Error.Println(err.Error())
	}
	return err
}

// ExtractHostFromURL returns the host of urlStr, or "the backend".
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "the backend"
	}
	return u.Host
}
