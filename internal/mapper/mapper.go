// Package mapper converts wire records and transport DTOs to and from domain models.
package mapper

import (
	"strconv"

	"environment-deployments/internal/api"
	"environment-deployments/internal/entities"
	"environment-deployments/internal/github"
)

// unknownRef is substituted when the REST shape lacks a sha or ref.
// Downstream display logic renders the literal, so it must stay "unknown"
// rather than an absent field.
const unknownRef = "unknown"

// FromStructuredDeployment builds an entities.Deployment from a GraphQL node.
func FromStructuredDeployment(src github.StructuredDeployment) entities.Deployment {
	d := entities.Deployment{
		ID:          src.ID,
		CommitRef:   src.CommitOid,
		Environment: src.Environment,
		CreatedAt:   src.CreatedAt,
	}
	if src.Ref != nil {
		d.BranchOrTag = src.Ref.Name
	}
	if src.LatestStatus != nil {
		d.LatestStatus = &entities.DeploymentStatus{
			State:          entities.ParseDeploymentState(src.LatestStatus.State),
			CreatedAt:      src.LatestStatus.CreatedAt,
			EnvironmentURL: src.LatestStatus.EnvironmentURL,
			LogURL:         src.LatestStatus.LogURL,
		}
	}
	return d
}

// FromResourceDeployment builds an entities.Deployment from a REST record.
// The REST shape carries no status history inline; the latest status is
// fetched separately and attached via FromResourceStatus.
func FromResourceDeployment(src github.ResourceDeployment) entities.Deployment {
	commit := src.SHA
	if commit == "" {
		commit = unknownRef
	}
	ref := src.Ref
	if ref == "" {
		ref = unknownRef
	}
	return entities.Deployment{
		ID:          strconv.FormatInt(src.ID, 10),
		CommitRef:   commit,
		BranchOrTag: ref,
		Environment: src.Environment,
		CreatedAt:   src.CreatedAt,
	}
}

// FromResourceStatus builds an entities.DeploymentStatus from a REST record.
func FromResourceStatus(src github.ResourceStatus) entities.DeploymentStatus {
	st := entities.DeploymentStatus{
		State:     entities.ParseDeploymentState(src.State),
		CreatedAt: src.CreatedAt,
	}
	if src.EnvironmentURL != "" {
		url := src.EnvironmentURL
		st.EnvironmentURL = &url
	}
	if src.LogURL != "" {
		url := src.LogURL
		st.LogURL = &url
	}
	return st
}

// ToAPISnapshot maps entities.EnvironmentSnapshot to transport model.
func ToAPISnapshot(src entities.EnvironmentSnapshot) api.EnvironmentSnapshot {
	out := api.EnvironmentSnapshot{Name: src.Name}
	if src.Deployment != nil {
		out.Deployment = toAPIDeployment(*src.Deployment)
	}
	return out
}

// ToAPISnapshotList maps a slice of snapshots to transport slice.
func ToAPISnapshotList(list []entities.EnvironmentSnapshot) []api.EnvironmentSnapshot {
	res := make([]api.EnvironmentSnapshot, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPISnapshot(s))
	}
	return res
}

func toAPIDeployment(src entities.Deployment) *api.Deployment {
	out := &api.Deployment{
		ID:          src.ID,
		CommitRef:   src.CommitRef,
		BranchOrTag: src.BranchOrTag,
		Environment: src.Environment,
		CreatedAt:   src.CreatedAt,
	}
	if src.LatestStatus != nil {
		out.LatestStatus = &api.DeploymentStatus{
			State:          string(src.LatestStatus.State),
			CreatedAt:      src.LatestStatus.CreatedAt,
			EnvironmentURL: src.LatestStatus.EnvironmentURL,
			LogURL:         src.LatestStatus.LogURL,
		}
	}
	return out
}
