// Command dnamatch compares two DNA sequence files with one of three
// algorithms: a brute-force exact scan, the Karp-Rabin rolling-hash scan, or
// an LCS alignment with a normalized distance.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Giorgos-Arg/dna-pattern-matching/internal/analysis"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/dna"
	"github.com/Giorgos-Arg/dna-pattern-matching/internal/models"
)

var algo = flag.String("algo", "", "Algorithm to run: bf (brute force), kr (Karp-Rabin) or lcss (longest common subsequence)")

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  dnamatch -algo bf|kr|lcss <dna_sequence_file> <pattern_or_second_sequence_file>\n")
	flag.PrintDefaults()
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 || !analysis.ValidMode(*algo) || *algo == models.ModeCrossCheck {
		usage()
		os.Exit(1)
	}

	seq, err := dna.Load(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load dna sequence")
	}
	pattern, err := dna.Load(flag.Arg(1))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load pattern sequence")
	}

	if *algo != models.ModeLCS && pattern.Len() > seq.Len() {
		log.Fatal().Msg("The dna sequence must contain more characters than the pattern sequence")
	}

	outcome, err := analysis.Run(*algo, seq, pattern)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	switch *algo {
	case models.ModeBruteForce, models.ModeRabinKarp:
		fmt.Printf("The pattern was found: %d times\n", *outcome.Occurrences)
	case models.ModeLCS:
		fmt.Printf("The length of the largest common subsequence is: %d\n", *outcome.LCSLength)
		fmt.Printf("The distance between the two DNA sequences is: %.2f\n", *outcome.Distance)
	}
}
