package downloader

import (
	"net/http"
	"net/url"
	"strings"
)

// redirectTarget extracts the redirect target of a response, if any.
func redirectTarget(resp *http.Response) (string, bool) {
	switch resp.StatusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
	default:
		return "", false
	}

	loc := strings.TrimSpace(resp.Header.Get("Location"))
	if loc == "" {
		return "", false
	}
	return loc, true
}

// resolveRedirect computes the next attempt URL. A target without a host is
// treated as path-only and glued onto the scheme and host of the URL that
// produced the redirect; a target with a host is used verbatim.
func resolveRedirect(current *url.URL, target string) (string, bool) {
	tu, err := url.Parse(target)
	if err != nil {
		return "", false
	}
	if tu.Host == "" {
		return current.Scheme + "://" + current.Host + tu.String(), true
	}
	return target, true
}
