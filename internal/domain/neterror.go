package domain

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/url"
	"syscall"
)

// NetworkError is the transport-level error enumeration forwarded to callers.
// It mirrors what the underlying transport reports; the downloader does not
// reinterpret codes beyond this classification.
type NetworkError string

const (
	NetworkNoError           NetworkError = "no_error"
	NetworkConnectionRefused NetworkError = "connection_refused"
	NetworkHostNotFound      NetworkError = "host_not_found"
	NetworkTimeout           NetworkError = "timeout"
	NetworkCanceled          NetworkError = "canceled"
	NetworkTLS               NetworkError = "tls"
	NetworkProtocol          NetworkError = "protocol"
	NetworkAccessDenied      NetworkError = "access_denied"
	NetworkContentNotFound   NetworkError = "content_not_found"
	NetworkServerError       NetworkError = "server_error"
	NetworkTooManyRedirects  NetworkError = "too_many_redirects"
	NetworkUnknown           NetworkError = "unknown"
)

// ClassifyNetError maps a transport error to a NetworkError code.
func ClassifyNetError(err error) NetworkError {
	if err == nil {
		return NetworkNoError
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NetworkTimeout
	}
	if errors.Is(err, context.Canceled) {
		return NetworkCanceled
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return NetworkConnectionRefused
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NetworkHostNotFound
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return NetworkTLS
	}
	var recErr tls.RecordHeaderError
	if errors.As(err, &recErr) {
		return NetworkTLS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NetworkTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NetworkProtocol
	}

	return NetworkUnknown
}

// ClassifyStatus maps a terminal HTTP status code to a NetworkError code.
func ClassifyStatus(status int) NetworkError {
	switch {
	case status < 400:
		return NetworkNoError
	case status == 401 || status == 403 || status == 407:
		return NetworkAccessDenied
	case status == 404 || status == 410:
		return NetworkContentNotFound
	case status >= 500:
		return NetworkServerError
	default:
		return NetworkProtocol
	}
}
