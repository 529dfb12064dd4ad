// Package affinityprop implements Affinity Propagation clustering by
// responsibility/availability message passing over an N×N similarity
// matrix. Unlike K-Means or GMM, the number of output clusters is not
// fixed in advance — it falls out of which samples end up as their own
// exemplar once responsibilities and availabilities converge.
package affinityprop
