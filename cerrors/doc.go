// SPDX-License-Identifier: MIT
// Package cerrors holds clusterkit's shared error kinds in one place so
// that a caller driving kmeans, gmm, hierarchical, dbscan, affinityprop
// and seeding can all use the same errors.Is vocabulary regardless of
// which package actually raised the error.
package cerrors
