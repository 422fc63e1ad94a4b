package util

import (
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidStateURL = errors.New("invalid state url")

// ParseStateURL accepts only absolute http(s) URLs with a host.
func ParseStateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, ErrInvalidStateURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, ErrInvalidStateURL
	}
	if len(u.Host) == 0 {
		return nil, ErrInvalidStateURL
	}

	return u, nil
}

// SetQueryParam sets key to value on rawURL the way URLSearchParams.set does:
// the first pair named key is replaced in place, later ones are dropped, and
// the pair is appended when absent. Every other pair keeps its position and
// its original encoding.
func SetQueryParam(rawURL string, key string, value string) (string, error) {
	u, err := ParseStateURL(rawURL)
	if err != nil {
		return "", err
	}

	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)

	var (
		pairs    []string
		replaced bool
	)
	if len(u.RawQuery) != 0 {
		for _, p := range strings.Split(u.RawQuery, "&") {
			if len(p) == 0 {
				continue
			}

			name, _, _ := strings.Cut(p, "=")
			if n, err := url.QueryUnescape(name); err == nil && n == key {
				if !replaced {
					pairs = append(pairs, pair)
					replaced = true
				}
				continue
			}

			pairs = append(pairs, p)
		}
	}
	if !replaced {
		pairs = append(pairs, pair)
	}

	u.RawQuery = strings.Join(pairs, "&")
	u.ForceQuery = false

	return u.String(), nil
}
