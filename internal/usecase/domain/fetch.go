package domain

import (
	"context"
	"errors"

	"environment-deployments/internal/entities"
	"environment-deployments/internal/github"
	"environment-deployments/internal/mapper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fetchEnvironments runs one fetch cycle: structured protocol first,
// resource protocol on any structured failure. It never fails; when
// both protocols fail the cycle degrades to an empty list and the
// failures go to the log only.
func (u *Usecase) fetchEnvironments(ctx context.Context, key entities.RepoKey) []entities.EnvironmentSnapshot {
	log := u.log.With("repo", key.String(), "cycle_id", uuid.NewString())

	snapshots, err := u.fetchStructured(ctx, key)
	if err == nil {
		return snapshots
	}
	if errors.Is(err, entities.ErrPolicyBlocked) {
		log.Warnw("structured protocol policy-blocked, falling back", "error", err)
	} else {
		log.Warnw("structured protocol failed, falling back", "error", err)
	}

	snapshots, err = u.fetchResource(ctx, key, log)
	if err != nil {
		log.Errorw("resource protocol failed", "error", err)
		return []entities.EnvironmentSnapshot{}
	}
	return snapshots
}

// fetchStructured serves a cycle via the GraphQL protocol: one query
// for the newest deployments with nested latest status.
func (u *Usecase) fetchStructured(ctx context.Context, key entities.RepoKey) ([]entities.EnvironmentSnapshot, error) {
	raw, err := u.api.QueryStructured(ctx, github.DeploymentsQuery(key, u.pageSize))
	if err != nil {
		return nil, err
	}

	nodes, err := github.ParseStructuredDeployments(raw)
	if err != nil {
		return nil, err
	}

	deployments := make([]entities.Deployment, 0, len(nodes))
	for _, n := range nodes {
		deployments = append(deployments, mapper.FromStructuredDeployment(n))
	}
	return reduceLatest(deployments), nil
}

// fetchResource serves a cycle via the REST protocol. 404/403 mean "no
// accessible deployments" and yield an empty list without error. The
// listing carries no status history, so after reduction one latest-
// status call is issued per surviving deployment, bounding the
// amplification to one call per distinct environment. Status calls run
// sequentially; a failed one leaves that deployment without a status.
func (u *Usecase) fetchResource(ctx context.Context, key entities.RepoKey, log *zap.SugaredLogger) ([]entities.EnvironmentSnapshot, error) {
	raw, err := u.api.QueryResource(ctx, github.DeploymentsPath(key, u.pageSize))
	if errors.Is(err, entities.ErrNotFound) || errors.Is(err, entities.ErrForbidden) {
		log.Infow("no accessible deployments", "reason", err.Error())
		return []entities.EnvironmentSnapshot{}, nil
	}
	if err != nil {
		return nil, err
	}

	records, err := github.ParseResourceDeployments(raw)
	if err != nil {
		return nil, err
	}

	deployments := make([]entities.Deployment, 0, len(records))
	for _, rec := range records {
		deployments = append(deployments, mapper.FromResourceDeployment(rec))
	}

	snapshots := reduceLatest(deployments)
	for _, s := range snapshots {
		u.attachLatestStatus(ctx, key, s.Deployment, log)
	}
	return snapshots, nil
}

func (u *Usecase) attachLatestStatus(ctx context.Context, key entities.RepoKey, d *entities.Deployment, log *zap.SugaredLogger) {
	raw, err := u.api.QueryResource(ctx, github.StatusesPath(key, d.ID))
	if err != nil {
		log.Warnw("latest status fetch failed", "deployment_id", d.ID, "error", err)
		return
	}

	statuses, err := github.ParseResourceStatuses(raw)
	if err != nil {
		log.Warnw("latest status decode failed", "deployment_id", d.ID, "error", err)
		return
	}
	if len(statuses) == 0 {
		return
	}

	st := mapper.FromResourceStatus(statuses[0])
	d.LatestStatus = &st
}
