// Package cli — iprb.go implements the "rosalind iprb" command.
//
// The iprb command computes the probability that two organisms picked at
// random from a population of known genotype counts produce an offspring
// showing the dominant phenotype.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savish/rosalind/internal/mendel"
	"github.com/savish/rosalind/internal/model"
)

// NewIprbCommand creates the "iprb" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewIprbCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "iprb <homozygous_dominant> <heterozygous> <homozygous_recessive>",
		Short: "Probability of a dominant-phenotype offspring",
		Long: `Compute the probability that two randomly mated organisms produce an
offspring carrying at least one dominant allele.

The three arguments count homozygous dominant, heterozygous and
homozygous recessive individuals in the population.

Examples:
  rosalind iprb 2 2 2
  rosalind iprb 2 2 2 --json`,

		Args: exactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runIprb(args[0], args[1], args[2])
		},
	}
}

// runIprb parses the genotype counts and prints the offspring probability.
func runIprb(dominantArg, heteroArg, recessiveArg string) error {
	dominant, err := parseIntArg("homozygous_dominant", dominantArg)
	if err != nil {
		return err
	}
	hetero, err := parseIntArg("heterozygous", heteroArg)
	if err != nil {
		return err
	}
	recessive, err := parseIntArg("homozygous_recessive", recessiveArg)
	if err != nil {
		return err
	}

	pop := mendel.Population{
		HomozygousDominant:  dominant,
		Heterozygous:        hetero,
		HomozygousRecessive: recessive,
	}
	VerboseLog("Mating pairs drawn from a population of %d organisms", pop.Size())

	probability, err := pop.DominantOffspringProbability()
	if err != nil {
		return model.WrapCLIError(model.ExitValidationError, "invalid population counts", err)
	}

	printIprbResult(pop, probability)
	return nil
}

// printIprbResult outputs the probability in text or JSON format,
// depending on the global --json flag.
func printIprbResult(pop mendel.Population, probability float64) {
	if IsJSONOutput() {
		printIprbResultJSON(pop, probability)
	} else {
		fmt.Printf("%.5f\n", probability)
	}
}

// iprbJSON is the JSON output structure for the iprb command.
type iprbJSON struct {
	HomozygousDominant  int     `json:"homozygousDominant"`
	Heterozygous        int     `json:"heterozygous"`
	HomozygousRecessive int     `json:"homozygousRecessive"`
	Probability         float64 `json:"probability"`
}

// printIprbResultJSON outputs the probability as structured JSON.
func printIprbResultJSON(pop mendel.Population, probability float64) {
	data, _ := json.MarshalIndent(iprbJSON{
		HomozygousDominant:  pop.HomozygousDominant,
		Heterozygous:        pop.Heterozygous,
		HomozygousRecessive: pop.HomozygousRecessive,
		Probability:         probability,
	}, "", "  ")
	fmt.Println(string(data))
}
