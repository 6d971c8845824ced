// Command euler runs the numeric puzzle drivers on top of the prime stream
// library. Every command prints its answer to stdout and reports timing on
// stderr.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"github.com/eulergo/sift/gen"
	"github.com/eulergo/sift/multiples"
	"github.com/eulergo/sift/palindrome"
	"github.com/eulergo/sift/prime"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := cli.NewApp()
	app.Name = "euler"
	app.Usage = "numeric puzzle drivers built on an incremental prime sieve"
	app.Commands = []cli.Command{
		multiplesCommand(),
		factorCommand(),
		nthPrimeCommand(),
		primesCommand(),
		palindromeCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func report(cmd string, start time.Time, result any) {
	log.Info().
		Str("command", cmd).
		Dur("elapsed", time.Since(start)).
		Msg("solved")
	fmt.Println(result)
}

func multiplesCommand() cli.Command {
	return cli.Command{
		Name:  "multiples",
		Usage: "sum the merged multiples of a base set below a bound",
		Flags: []cli.Flag{
			cli.Int64Flag{Name: "below", Value: 1000, Usage: "exclusive upper bound"},
			cli.StringFlag{Name: "of", Value: "3,5", Usage: "comma-separated bases"},
		},
		Action: func(c *cli.Context) error {
			bases, err := parseBases(c.String("of"))
			if err != nil {
				return err
			}
			start := time.Now()
			total, err := multiples.SumBelow(c.Int64("below"), bases...)
			if err != nil {
				return fmt.Errorf("summing multiples: %w", err)
			}
			report("multiples", start, total)
			return nil
		},
	}
}

func factorCommand() cli.Command {
	return cli.Command{
		Name:      "factor",
		Usage:     "decompose a value into its prime factors",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("factor takes exactly one value")
			}
			n, err := strconv.ParseInt(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("parsing value: %w", err)
			}
			start := time.Now()
			factors := prime.Factors(n)
			if len(factors) == 0 {
				return fmt.Errorf("%d has no prime factorization", n)
			}
			parts := make([]string, len(factors))
			for i, f := range factors {
				parts[i] = strconv.FormatInt(f, 10)
			}
			report("factor", start, strings.Join(parts, " "))
			return nil
		},
	}
}

func nthPrimeCommand() cli.Command {
	return cli.Command{
		Name:  "nth-prime",
		Usage: "find the n-th prime number",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "n", Value: 10001, Usage: "1-based index into the prime sequence"},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("n")
			if n < 1 {
				return fmt.Errorf("n must be at least 1, got %d", n)
			}
			start := time.Now()
			primes := prime.Primes()
			var p int64
			for i := 0; i < n; i++ {
				if !primes.Next() {
					return fmt.Errorf("prime stream ended at index %d: %w", i, primes.Error())
				}
				p = primes.Value()
			}
			report("nth-prime", start, p)
			return nil
		},
	}
}

func primesCommand() cli.Command {
	return cli.Command{
		Name:  "primes",
		Usage: "list the primes below a bound",
		Flags: []cli.Flag{
			cli.Int64Flag{Name: "below", Value: 100, Usage: "exclusive upper bound"},
		},
		Action: func(c *cli.Context) error {
			start := time.Now()
			values, err := gen.Collect(prime.PrimesBelow(c.Int64("below")))
			if err != nil {
				return fmt.Errorf("sieving: %w", err)
			}
			log.Info().Int("count", len(values)).Msg("primes found")
			parts := make([]string, len(values))
			for i, p := range values {
				parts[i] = strconv.FormatInt(p, 10)
			}
			report("primes", start, strings.Join(parts, " "))
			return nil
		},
	}
}

func palindromeCommand() cli.Command {
	return cli.Command{
		Name:  "palindrome",
		Usage: "find the largest palindromic product of two n-digit factors",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "digits", Value: 3, Usage: "digit count of each factor (1-9)"},
		},
		Action: func(c *cli.Context) error {
			start := time.Now()
			p, a, b := palindrome.LargestProduct(c.Int("digits"))
			if p == 0 {
				return fmt.Errorf("no palindromic product for %d-digit factors", c.Int("digits"))
			}
			report("palindrome", start, fmt.Sprintf("%d = %d x %d", p, a, b))
			return nil
		},
	}
}

func parseBases(s string) ([]int64, error) {
	var bases []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		base, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing base %q: %w", field, err)
		}
		bases = append(bases, base)
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("no bases given")
	}
	return bases, nil
}
