package usecase

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("upstream catalog unavailable")
	ErrDoctorNotFound      = errors.New("doctor not found")
)
