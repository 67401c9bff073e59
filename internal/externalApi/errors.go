package externalApi

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("error upstream unavailable")
	ErrUpstreamStatus      = errors.New("error upstream returned non-2xx status")
	ErrUpstreamFormat      = errors.New("error upstream returned unexpected payload")
	ErrNotConfigured       = errors.New("error api is not configured")
)
