// Package seeding produces the k initial means that K-Means and
// Gaussian mixture fitting start from: Lloyd's plain uniform sample
// and K-Means++'s distance-weighted sample, both driven by an
// explicit rng.Source rather than any implicit global generator.
package seeding
