// Package dendrogram holds the result of hierarchical clustering in
// pointer representation: two length-N arrays, λ (merge heights) and π
// (merge targets), rather than an explicit binary tree or a flat list
// of merges. This is the representation SLINK and CLINK build directly
// and it is what every cut operation consumes, so no conversion ever
// happens in either direction.
package dendrogram
