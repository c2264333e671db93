// Package api contains transport DTOs and route registration.
package api

import "time"

// EnvironmentSnapshot is the per-environment record returned to consumers.
type EnvironmentSnapshot struct {
	Name       string      `json:"name"`
	Deployment *Deployment `json:"deployment,omitempty"`
}

// Deployment is the transport shape of one deployment record.
type Deployment struct {
	ID           string            `json:"id"`
	CommitRef    string            `json:"commit_ref"`
	BranchOrTag  string            `json:"branch_or_tag,omitempty"`
	Environment  string            `json:"environment"`
	CreatedAt    time.Time         `json:"created_at"`
	LatestStatus *DeploymentStatus `json:"latest_status,omitempty"`
}

// DeploymentStatus is the transport shape of a deployment status event.
type DeploymentStatus struct {
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
	EnvironmentURL *string   `json:"environment_url,omitempty"`
	LogURL         *string   `json:"log_url,omitempty"`
}

// EnvironmentsResponse wraps the snapshot list.
type EnvironmentsResponse struct {
	Environments []EnvironmentSnapshot `json:"environments"`
}

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// INVALIDARGUMENT signals failed request validation.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	// INTERNAL signals an unexpected server-side failure.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned on failures.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}
