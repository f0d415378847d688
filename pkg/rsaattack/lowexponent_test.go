package rsaattack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackLowExponent(t *testing.T) {
	random := testRand(7)

	// e = 3 against a 1024-bit modulus: 1000^3 is nowhere near n, so the
	// ciphertext is the cube itself.
	p, err := GeneratePrime(random, 512)
	require.NoError(t, err)
	q, err := GeneratePrime(random, 512)
	require.NoError(t, err)
	pub := &PublicKey{E: big.NewInt(3), N: new(big.Int).Mul(p, q)}

	m := big.NewInt(1000)
	c, err := Encrypt(m, pub)
	require.NoError(t, err)

	got, err := AttackLowExponent(c, pub, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Int64())
}

func TestAttackLowExponentWrappedOnce(t *testing.T) {
	// 15^3 = 3375 = 3233 + 142: the cube wrapped the modulus exactly once,
	// so the plain root fails and the k = 1 search finds it.
	pub := &PublicKey{E: big.NewInt(3), N: big.NewInt(3233)}
	c := big.NewInt(142)

	_, err := AttackLowExponent(c, pub, 0)
	require.ErrorIs(t, err, ErrRootNotFound)

	got, err := AttackLowExponent(c, pub, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got.Int64())
}

func TestAttackLowExponentDeterministic(t *testing.T) {
	pub := &PublicKey{E: big.NewInt(3), N: big.NewInt(3233)}

	first, err := AttackLowExponent(big.NewInt(142), pub, 1)
	require.NoError(t, err)
	second, err := AttackLowExponent(big.NewInt(142), pub, 1)
	require.NoError(t, err)
	assert.Zero(t, first.Cmp(second))
}

func TestAttackLowExponentInvalidInput(t *testing.T) {
	pub := &PublicKey{E: big.NewInt(3), N: big.NewInt(3233)}

	_, err := AttackLowExponent(big.NewInt(-1), pub, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = AttackLowExponent(big.NewInt(5), pub, -1)
	require.ErrorIs(t, err, ErrInvalidInput)

	huge := &PublicKey{E: new(big.Int).Lsh(big.NewInt(1), 64), N: big.NewInt(3233)}
	_, err = AttackLowExponent(big.NewInt(5), huge, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}
