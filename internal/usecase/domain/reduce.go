package domain

import "environment-deployments/internal/entities"

// reduceLatest keeps the single most recent deployment per environment.
// One ordered pass over the input: the first record of an environment
// inserts, later records replace only when strictly newer. Input is
// usually pre-sorted newest-first by the platform, but the comparison
// is always performed. Output order is first-insertion order of
// environment names. On an exact created-at tie the stored record wins;
// this mirrors the reference behavior and is not a guarantee.
func reduceLatest(deployments []entities.Deployment) []entities.EnvironmentSnapshot {
	snapshots := make([]entities.EnvironmentSnapshot, 0, len(deployments))
	index := make(map[string]int, len(deployments))

	for _, d := range deployments {
		d := d // per-iteration copy; &d below must not alias across iterations (pre-Go 1.22 loop semantics)
		i, ok := index[d.Environment]
		if !ok {
			index[d.Environment] = len(snapshots)
			snapshots = append(snapshots, entities.EnvironmentSnapshot{
				Name:       d.Environment,
				Deployment: &d,
			})
			continue
		}
		if d.CreatedAt.After(snapshots[i].Deployment.CreatedAt) {
			snapshots[i].Deployment = &d
		}
	}

	return snapshots
}
