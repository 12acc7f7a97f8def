// Package lensmodel combines lens profiles into a single deflector.
//
// A Model is a sum of Components. The potential, deflection and Hessian of
// the model are the element-wise sums over its components, and the derived
// quantities (convergence, shear, magnification, ray shooting) are formed
// from those sums:
//
//	m, err := lensmodel.New([]lensmodel.Component{
//		lensmodel.NewGaussian(profiles.Gaussian{}, profiles.GaussianParams{Amp: 1, Sigma: 1}),
//		lensmodel.NewSIS(profiles.SISParams{ThetaE: 0.5}),
//	})
//	ax, ay, err := m.Alpha(ctx, x, y)
//
// Components are evaluated concurrently; the sums are always formed in
// component order, so results do not depend on scheduling.
package lensmodel
