/*
Package gausslegendre is a pure Go implementation of Gauss-Legendre quadrature.
It computes the nodes and weights of the N-point rule on [-1, 1], maps them to arbitrary
intervals and evaluates weighted sums of integrands, both in float64 and in arbitrary
precision through math/big.
*/
package gausslegendre
