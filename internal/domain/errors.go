package domain

import "errors"

var (
	// ErrProductNotFound is returned when no source knows the barcode
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidBarcode is returned when a barcode is not 8-14 digits
	ErrInvalidBarcode = errors.New("invalid barcode")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUpstreamFailure is returned when the product database request fails
	ErrUpstreamFailure = errors.New("product database request failed")

	// ErrInsightsUnavailable is returned when the AI analyzer cannot produce insights
	ErrInsightsUnavailable = errors.New("custom insights unavailable")
)
