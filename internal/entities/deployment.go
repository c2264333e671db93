// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// DeploymentState enumerates deployment status states.
type DeploymentState string

const (
	// StateSuccess marks a deployment as live.
	StateSuccess DeploymentState = "success"
	// StateError marks a deployment that errored.
	StateError DeploymentState = "error"
	// StateFailure marks a failed deployment.
	StateFailure DeploymentState = "failure"
	// StatePending marks a deployment awaiting execution.
	StatePending DeploymentState = "pending"
	// StateInProgress marks a deployment currently running.
	StateInProgress DeploymentState = "in_progress"
	// StateQueued marks a deployment waiting in queue.
	StateQueued DeploymentState = "queued"
	// StateInactive marks a superseded deployment.
	StateInactive DeploymentState = "inactive"
	// StateUnknown is the engine's own sentinel for absent or
	// unparseable state; the platform never emits it.
	StateUnknown DeploymentState = "unknown"
)

// ParseDeploymentState lower-cases a wire state token and maps anything
// outside the known set to StateUnknown.
func ParseDeploymentState(s string) DeploymentState {
	switch st := DeploymentState(strings.ToLower(s)); st {
	case StateSuccess, StateError, StateFailure, StatePending,
		StateInProgress, StateQueued, StateInactive:
		return st
	default:
		return StateUnknown
	}
}

// DeploymentStatus is the most recent state event recorded for a deployment.
// Entities carry json tags because cache backends serialize them.
type DeploymentStatus struct {
	State          DeploymentState `json:"state"`
	CreatedAt      time.Time       `json:"created_at"`
	EnvironmentURL *string         `json:"environment_url,omitempty"`
	LogURL         *string         `json:"log_url,omitempty"`
}

// Deployment is a domain model of one release event against an environment.
type Deployment struct {
	ID           string            `json:"id"`
	CommitRef    string            `json:"commit_ref"`
	BranchOrTag  string            `json:"branch_or_tag,omitempty"`
	Environment  string            `json:"environment"`
	CreatedAt    time.Time         `json:"created_at"`
	LatestStatus *DeploymentStatus `json:"latest_status,omitempty"`
}

// EnvironmentSnapshot is the reduced one-per-environment view.
// Deployment.Environment always equals Name when Deployment is set.
type EnvironmentSnapshot struct {
	Name       string      `json:"name"`
	Deployment *Deployment `json:"deployment,omitempty"`
}
