package mendel

import (
	"errors"
	"fmt"
)

// Genotype classifies an organism by its allele pair for a single factor.
type Genotype int

const (
	HomozygousDominant Genotype = iota
	Heterozygous
	HomozygousRecessive
)

// genotypes lists all classes in declaration order.
var genotypes = []Genotype{HomozygousDominant, Heterozygous, HomozygousRecessive}

// String returns the allele-pair notation for the genotype.
func (g Genotype) String() string {
	switch g {
	case HomozygousDominant:
		return "DD"
	case Heterozygous:
		return "DR"
	case HomozygousRecessive:
		return "RR"
	default:
		return fmt.Sprintf("Genotype(%d)", int(g))
	}
}

// alleles returns the genotype's allele pair, true meaning dominant.
func (g Genotype) alleles() [2]bool {
	switch g {
	case HomozygousDominant:
		return [2]bool{true, true}
	case Heterozygous:
		return [2]bool{true, false}
	default:
		return [2]bool{false, false}
	}
}

// DominantChildProbability returns the probability that a child of parents
// a and b displays the dominant trait. Each parent passes one of its two
// alleles with equal probability, so the result is the dominant share of
// the four Punnett-square combinations.
func DominantChildProbability(a, b Genotype) float64 {
	dominant := 0
	for _, x := range a.alleles() {
		for _, y := range b.alleles() {
			if x || y {
				dominant++
			}
		}
	}
	return float64(dominant) / 4
}

// Population holds the number of organisms of each genotype class.
type Population struct {
	HomozygousDominant  int
	Heterozygous        int
	HomozygousRecessive int
}

// Size returns the total number of organisms.
func (p Population) Size() int {
	return p.HomozygousDominant + p.Heterozygous + p.HomozygousRecessive
}

func (p Population) count(g Genotype) int {
	switch g {
	case HomozygousDominant:
		return p.HomozygousDominant
	case Heterozygous:
		return p.Heterozygous
	default:
		return p.HomozygousRecessive
	}
}

// DominantOffspringProbability returns the probability that two organisms
// drawn from the population without replacement produce a child displaying
// the dominant trait. It sums, over every ordered pair of genotype
// classes, the probability of drawing that pair times the pair's dominant
// Punnett-square share.
func (p Population) DominantOffspringProbability() (float64, error) {
	if p.HomozygousDominant < 0 || p.Heterozygous < 0 || p.HomozygousRecessive < 0 {
		return 0, errors.New("population counts must be non-negative")
	}
	n := p.Size()
	if n < 2 {
		return 0, fmt.Errorf("population must contain at least 2 organisms, got %d", n)
	}

	total := 0.0
	for _, first := range genotypes {
		c1 := p.count(first)
		if c1 == 0 {
			continue
		}
		for _, second := range genotypes {
			c2 := p.count(second)
			if second == first {
				c2--
			}
			if c2 == 0 {
				continue
			}
			pair := float64(c1) / float64(n) * float64(c2) / float64(n-1)
			total += pair * DominantChildProbability(first, second)
		}
	}
	return total, nil
}
