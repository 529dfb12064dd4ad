// Package dbscan implements density-based clustering with noise: a
// point is a core point once its ε-neighbourhood (exclusive of itself)
// has at least minPts-1 members, and clusters grow by expanding core
// points' neighbourhoods outward.
//
// The returned cluster count advances its internal counter on every
// outer-loop iteration over an unassigned point, whether or not that
// point turned out to be a core point starting a new cluster — this
// mirrors the reference implementation's behaviour rather than only
// counting clusters that actually formed, so Result.Labels values are not
// guaranteed to be dense in [0, clusterCount) when noise is present.
package dbscan
