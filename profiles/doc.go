// Package profiles implements analytic lens mass profiles: the lensing
// potential, its gradient (deflection) and Hessian at sky positions, and the
// 2D/3D density and enclosed-mass relations of each profile.
//
// All position-dependent functions take batches as equal-length slices and
// return freshly allocated slices of the same length; mismatched lengths
// panic. Profile values are stateless and safe for concurrent use.
//
// Formulas that divide by the projected radius clamp it to RadiusFloor
// first, so evaluation at the lens centre is finite. This is an
// approximation of the limit, not the limit itself.
package profiles
