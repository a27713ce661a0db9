// Package metrics records per-run measurements: runtime memory snapshots
// around each render and Prometheus collectors for render outcomes.
package metrics
