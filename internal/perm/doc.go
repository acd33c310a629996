// Package perm enumerates permutations of {1..n}, plain and signed, in
// lexicographic order. Enumeration decodes each rank into its Lehmer code
// (factorial-base digits), so generators hold no state beyond the next
// rank. Counts are math/big integers; ranks are int64, which bounds a
// single generator at n = 20.
package perm
