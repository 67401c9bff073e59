package chart

import "errors"

var (
	ErrUpstreamFormat = errors.New("error unexpected upstream chart format")
	ErrNoValidSamples = errors.New("error no valid chart samples")
	ErrEmptySeries    = errors.New("error empty series")
)
