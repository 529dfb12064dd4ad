// Package kmeans implements Lloyd's K-Means clustering over
// fixed-dimension samples, exposed as discrete init/e_step/m_step/run
// steps so a caller (or a step-by-step visualiser) can drive and
// inspect each half-iteration individually rather than only the
// converged result.
//
// An empty cluster at the maximisation step is reseeded from a
// uniformly-chosen sample rather than left producing a mean of zero
// from a division by zero — see the comment on MStep for the reasoning.
package kmeans
