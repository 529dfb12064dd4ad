// Package hierarchical builds agglomerative clustering dendrograms in
// two complementary ways:
//
//   - Naive: an O(n²·k) linkage-agnostic driver that takes any
//     cluster-to-cluster distance functor (Single, Complete, Average)
//     and returns a flat partition into K clusters.
//   - SLINK / CLINK: O(n²) pointer-representation constructors
//     specialised to single and complete linkage respectively, each
//     producing a dendrogram.Dendrogram that supports cuts at any
//     height or cluster count after the fact, not just one fixed K.
package hierarchical
