// Package dsu implements a disjoint-set (union-find) structure over a
// dense range of integer indices 0..n-1, with path-compressed Find and
// a running connected-component count maintained incrementally on
// Merge.
//
// Dendrogram cuts (Dendrogram.WithHeight, Dendrogram.WithClusterCount)
// drive components down from n singletons toward k merged clusters
// using this structure; the naive agglomerative builder, DBSCAN and
// SLINK/CLINK have their own direct array bookkeeping and do not need it.
package dsu
