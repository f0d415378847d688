package rsaattack

import (
	"context"

	"github.com/pkg/errors"
)

// Client provides a high-level API for breaking weak RSA keys.
type Client struct {
	strategy AttackStrategy
	parser   TargetParser
}

// NewClient creates a new client with default settings: a sequential
// strategy with default bounds and a JSON target parser.
func NewClient() *Client {
	return &Client{
		strategy: NewSequentialStrategy(),
		parser:   &JSONParser{},
	}
}

// WithStrategy sets a custom attack strategy.
func (c *Client) WithStrategy(strategy AttackStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom target parser.
func (c *Client) WithParser(parser TargetParser) *Client {
	c.parser = parser
	return c
}

// RecoverKey parses attack targets from a file and runs the strategy
// against each until one breaks. When the file holds more than one target,
// every pair of moduli is first checked for a shared prime factor, the one
// attack that needs two keys.
func (c *Client) RecoverKey(ctx context.Context, source string) (*AttackResult, error) {
	targets, err := c.parser.ParseTargets(source)
	if err != nil {
		return nil, errors.Wrap(err, "parsing targets")
	}
	if len(targets) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no targets in source")
	}

	for i := 0; i < len(targets); i++ {
		for j := i + 1; j < len(targets); j++ {
			priv1, priv2, err := AttackCommonFactor(targets[i].Key, targets[j].Key)
			if err != nil {
				continue
			}
			return &AttackResult{
				PrivateKey:       priv1,
				SecondPrivateKey: priv2,
				Attack:           "common-factor",
			}, nil
		}
	}

	for _, target := range targets {
		if result := c.strategy.Run(ctx, target); result != nil {
			return result, nil
		}
	}
	return nil, errors.New("no attack succeeded against any target")
}

// RecoverKeyFromTarget runs the strategy against an in-memory target. Use
// this when the public key came from your own parser or API.
func (c *Client) RecoverKeyFromTarget(ctx context.Context, target *Target) (*AttackResult, error) {
	if target == nil || target.Key == nil {
		return nil, errors.Wrap(ErrInvalidInput, "target has no public key")
	}
	if err := target.Key.validate(); err != nil {
		return nil, err
	}
	result := c.strategy.Run(ctx, target)
	if result == nil {
		return nil, errors.Errorf("strategy %s found no applicable weakness", c.strategy.Name())
	}
	return result, nil
}
