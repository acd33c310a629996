// Package fib computes rabbit-pair population sizes under the two breeding
// models of the fib and fibd problems. Populations grow exponentially, so
// all counts are math/big integers.
package fib
