// Package mendel models single-factor Mendelian inheritance: genotype
// classes, the Punnett-square offspring distribution of a mating pair, and
// the probability of drawing a pair from a finite population.
package mendel
