package interfaces

import "errors"

var (
	// ErrUpstreamUnavailable wraps every failure of a collaborator service.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	// ErrStillReferenced is returned by deletes blocked by dependent rows.
	ErrStillReferenced = errors.New("row is still referenced")
)
