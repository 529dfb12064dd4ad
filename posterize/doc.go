// Package posterize reduces an image to a handful of representative
// colours by clustering its pixels. Each pixel is embedded as a
// 3-vector in CIE L*a*b* space, via github.com/lucasb-eyer/go-colorful
// rather than raw RGB — Euclidean distance in Lab space tracks
// perceived colour difference far better than in RGB, which matters
// because every clustering algorithm in this module measures
// similarity as squared Euclidean distance.
package posterize
