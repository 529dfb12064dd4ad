// Package gmm fits a Gaussian mixture model by expectation-maximisation
// over fixed-dimension samples, exposed as discrete init/e_step/m_step
// steps mirroring package kmeans's shape.
//
// Initial covariances are the identity scaled by 0.01 rather than the
// bare identity — a tighter initial spread converges faster when
// seeding has already placed means close to their true cluster
// centres, which is the common case once K-Means++ seeding is used.
package gmm
