package github

import (
	"encoding/json"
	"fmt"
	"time"

	"environment-deployments/internal/entities"
)

// StructuredDeployment is one deployment node from the GraphQL protocol.
// State tokens arrive upper-case ("SUCCESS", "IN_PROGRESS").
type StructuredDeployment struct {
	ID          string    `json:"id"`
	CommitOid   string    `json:"commitOid"`
	Environment string    `json:"environment"`
	CreatedAt   time.Time `json:"createdAt"`
	Ref         *struct {
		Name string `json:"name"`
	} `json:"ref"`
	LatestStatus *StructuredStatus `json:"latestStatus"`
}

// StructuredStatus is the nested latest-status node of the GraphQL shape.
type StructuredStatus struct {
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"createdAt"`
	EnvironmentURL *string   `json:"environmentUrl"`
	LogURL         *string   `json:"logUrl"`
}

// ResourceDeployment is one deployment record from the REST protocol.
type ResourceDeployment struct {
	ID          int64     `json:"id"`
	SHA         string    `json:"sha"`
	Ref         string    `json:"ref"`
	Environment string    `json:"environment"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResourceStatus is one deployment-status record from the REST protocol.
// State tokens arrive lower-case.
type ResourceStatus struct {
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
	EnvironmentURL string    `json:"environment_url"`
	LogURL         string    `json:"log_url"`
}

// DeploymentsQuery builds the structured query for the latest deployments
// of a repository, newest first, with nested latest-status fields.
func DeploymentsQuery(key entities.RepoKey, pageSize int) string {
	return fmt.Sprintf(`{
  repository(owner: %q, name: %q) {
    deployments(first: %d, orderBy: {field: CREATED_AT, direction: DESC}) {
      nodes {
        id
        commitOid
        environment
        createdAt
        ref { name }
        latestStatus { state createdAt environmentUrl logUrl }
      }
    }
  }
}`, key.Owner, key.Name, pageSize)
}

// DeploymentsPath is the REST listing endpoint for a repository, newest first.
func DeploymentsPath(key entities.RepoKey, pageSize int) string {
	return fmt.Sprintf("repos/%s/%s/deployments?per_page=%d", key.Owner, key.Name, pageSize)
}

// StatusesPath is the REST per-deployment statuses endpoint, latest first,
// capped at one record.
func StatusesPath(key entities.RepoKey, deploymentID string) string {
	return fmt.Sprintf("repos/%s/%s/deployments/%s/statuses?per_page=1", key.Owner, key.Name, deploymentID)
}

// ParseStructuredDeployments unpacks the GraphQL data tree into deployment nodes.
func ParseStructuredDeployments(raw []byte) ([]StructuredDeployment, error) {
	var data struct {
		Repository struct {
			Deployments struct {
				Nodes []StructuredDeployment `json:"nodes"`
			} `json:"deployments"`
		} `json:"repository"`
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode structured deployments: %w", err)
	}
	return data.Repository.Deployments.Nodes, nil
}

// ParseResourceDeployments decodes the REST deployments listing body.
func ParseResourceDeployments(raw []byte) ([]ResourceDeployment, error) {
	var deployments []ResourceDeployment
	if err := json.Unmarshal(raw, &deployments); err != nil {
		return nil, fmt.Errorf("decode resource deployments: %w", err)
	}
	return deployments, nil
}

// ParseResourceStatuses decodes the REST deployment-statuses body.
func ParseResourceStatuses(raw []byte) ([]ResourceStatus, error) {
	var statuses []ResourceStatus
	if err := json.Unmarshal(raw, &statuses); err != nil {
		return nil, fmt.Errorf("decode resource statuses: %w", err)
	}
	return statuses, nil
}
