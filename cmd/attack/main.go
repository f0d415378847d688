package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/dsoltani/rsa-attacks/pkg/rsaattack"
)

func main() {
	var (
		targetsFile = flag.String("targets", "", "Path to targets file (JSON or CSV) with e/n and optional c per record")
		format      = flag.String("format", "json", "Target file format (json or csv)")
		eValue      = flag.String("e", "", "Public exponent for a single inline target (decimal or 0x hex)")
		nValue      = flag.String("n", "", "Modulus for a single inline target (decimal or 0x hex)")
		cValue      = flag.String("c", "", "Optional ciphertext for the inline target")
		attack      = flag.String("attack", "auto", "Attack to run: auto, parallel, small-modulus, low-exponent, fermat, wiener")
		maxTrial    = flag.Uint64("max-trial", 1_000_000, "Trial-division bound for the small-modulus attack")
		maxIter     = flag.Int("max-iterations", 100_000, "Iteration bound for Fermat's factorization")
		kBound      = flag.Int("k-bound", 0, "c + k*n search bound for the low-exponent attack (0 = plain root)")
		lowExpMax   = flag.Int64("low-exponent-max", 7, "Largest public exponent the root attack is attempted on")
		numWorkers  = flag.Int("workers", 0, "Parallel workers for -attack parallel (0 = auto-detect)")
	)
	flag.Parse()

	config := rsaattack.Config{
		MaxTrial:        *maxTrial,
		MaxIterations:   *maxIter,
		RootSearchBound: *kBound,
		LowExponentMax:  *lowExpMax,
		NumWorkers:      *numWorkers,
	}

	var strategy rsaattack.AttackStrategy
	switch *attack {
	case "auto":
		strategy = rsaattack.NewSequentialStrategy().WithConfig(config)
	case "parallel":
		strategy = rsaattack.NewParallelStrategy().WithConfig(config)
	case "small-modulus", "low-exponent", "fermat", "wiener":
		strategy = singleAttackStrategy{name: *attack, config: config}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown attack %q\n", *attack)
		flag.Usage()
		os.Exit(1)
	}

	client := rsaattack.NewClient().WithStrategy(strategy)
	ctx := context.Background()

	var result *rsaattack.AttackResult
	var err error
	switch {
	case *targetsFile != "":
		var parser rsaattack.TargetParser
		if *format == "csv" {
			parser = &rsaattack.CSVParser{}
		} else {
			parser = &rsaattack.JSONParser{}
		}
		result, err = client.WithParser(parser).RecoverKey(ctx, *targetsFile)
	case *nValue != "" && *eValue != "":
		target, terr := inlineTarget(*eValue, *nValue, *cValue)
		if terr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", terr)
			os.Exit(1)
		}
		result, err = client.RecoverKeyFromTarget(ctx, target)
	default:
		fmt.Fprintln(os.Stderr, "Error: either --targets or both --e and --n are required")
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n[+] Key broken by the %s attack\n", result.Attack)
	if result.PrivateKey != nil {
		fmt.Printf("    d = %s\n", result.PrivateKey.D.String())
	}
	if result.SecondPrivateKey != nil {
		fmt.Printf("    d (second modulus) = %s\n", result.SecondPrivateKey.D.String())
	}
	if result.Plaintext != nil {
		fmt.Printf("    m = %s\n", result.Plaintext.String())
	}
}

// singleAttackStrategy runs exactly one attack instead of the full ladder.
type singleAttackStrategy struct {
	name   string
	config rsaattack.Config
}

func (s singleAttackStrategy) Name() string { return s.name }

func (s singleAttackStrategy) Run(ctx context.Context, target *rsaattack.Target) *rsaattack.AttackResult {
	if ctx.Err() != nil {
		return nil
	}
	switch s.name {
	case "small-modulus":
		priv, err := rsaattack.AttackSmallModulus(target.Key, s.config.MaxTrial)
		if err != nil {
			fmt.Fprintf(os.Stderr, "small-modulus attack: %v\n", err)
			return nil
		}
		return &rsaattack.AttackResult{PrivateKey: priv, Attack: s.name}
	case "low-exponent":
		if target.Ciphertext == nil {
			fmt.Fprintln(os.Stderr, "low-exponent attack needs a ciphertext (--c)")
			return nil
		}
		m, err := rsaattack.AttackLowExponent(target.Ciphertext, target.Key, s.config.RootSearchBound)
		if err != nil {
			fmt.Fprintf(os.Stderr, "low-exponent attack: %v\n", err)
			return nil
		}
		return &rsaattack.AttackResult{Plaintext: m, Attack: s.name}
	case "fermat":
		priv, err := rsaattack.AttackFermat(target.Key, s.config.MaxIterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fermat attack: %v\n", err)
			return nil
		}
		return &rsaattack.AttackResult{PrivateKey: priv, Attack: s.name}
	case "wiener":
		priv, err := rsaattack.AttackWiener(target.Key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wiener attack: %v\n", err)
			return nil
		}
		return &rsaattack.AttackResult{PrivateKey: priv, Attack: s.name}
	}
	return nil
}

func inlineTarget(eStr, nStr, cStr string) (*rsaattack.Target, error) {
	e, err := parseNumber(eStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --e: %w", err)
	}
	n, err := parseNumber(nStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --n: %w", err)
	}
	target := &rsaattack.Target{Key: &rsaattack.PublicKey{E: e, N: n}}
	if cStr != "" {
		c, err := parseNumber(cStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --c: %w", err)
		}
		target.Ciphertext = c
	}
	return target, nil
}

func parseNumber(s string) (*big.Int, error) {
	base := 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
		base = 16
	}
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("not a number: %s", s)
	}
	return z, nil
}
