package rsaattack

import "github.com/pkg/errors"

// Sentinel errors returned by the kernel and the attacks. Match with
// errors.Is; the attacks wrap these with context, never replace them.
var (
	// ErrInvalidInput marks caller misuse: nil or out-of-range arguments,
	// malformed key shapes. Raised before any search begins.
	ErrInvalidInput = errors.New("rsaattack: invalid input")

	// ErrNoInverse means gcd(a, m) != 1 in a modular-inverse computation,
	// i.e. an algebraically invalid key or attack-derived totient.
	ErrNoInverse = errors.New("rsaattack: modular inverse does not exist")

	// ErrMessageOutOfRange means the plaintext is negative or not smaller
	// than the modulus.
	ErrMessageOutOfRange = errors.New("rsaattack: message out of range")

	// ErrPrimeGeneration means the entropy source failed while sampling
	// prime candidates.
	ErrPrimeGeneration = errors.New("rsaattack: prime generation failed")

	// ErrFactorizationBoundExceeded means trial division found no factor
	// within the given bound. A normal negative result.
	ErrFactorizationBoundExceeded = errors.New("rsaattack: no factor found within trial bound")

	// ErrIterationBoundExceeded means Fermat's search found no square
	// difference within the given iteration count. A normal negative result.
	ErrIterationBoundExceeded = errors.New("rsaattack: iteration bound exceeded")

	// ErrRootNotFound means no exact e-th root exists for c + k*n within
	// the search bound. A normal negative result.
	ErrRootNotFound = errors.New("rsaattack: no exact e-th root found")

	// ErrWienerBoundNotSatisfied means no convergent of e/n yields the
	// private exponent; expected whenever d >= n^(1/4)/3.
	ErrWienerBoundNotSatisfied = errors.New("rsaattack: no convergent yields a valid private exponent")

	// ErrNoSharedFactor means the two moduli have no proper common factor.
	ErrNoSharedFactor = errors.New("rsaattack: moduli share no proper factor")

	// ErrDegenerateFactor means an attack found only the trivial
	// factorization, e.g. because the modulus itself is prime.
	ErrDegenerateFactor = errors.New("rsaattack: factorization is trivial")
)

func wrapInput(msg string) error {
	return errors.Wrap(ErrInvalidInput, msg)
}
