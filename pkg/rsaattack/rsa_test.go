package rsaattack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPairRoundTrip(t *testing.T) {
	random := testRand(3)

	pub, priv, err := GenerateKeyPair(random, 128)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultExponent), pub.E.Int64())
	assert.Zero(t, pub.N.Cmp(priv.N), "public and private modulus must match")

	nMinus1 := new(big.Int).Sub(pub.N, big.NewInt(1))
	messages := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(123456789),
		nMinus1,
	}
	for _, m := range messages {
		requireRoundTrip(t, pub, priv, m)
	}
}

func TestEncryptMessageOutOfRange(t *testing.T) {
	random := testRand(4)

	pub, _, err := GenerateKeyPair(random, 64)
	require.NoError(t, err)

	_, err = Encrypt(pub.N, pub)
	require.ErrorIs(t, err, ErrMessageOutOfRange)

	_, err = Encrypt(big.NewInt(-1), pub)
	require.ErrorIs(t, err, ErrMessageOutOfRange)
}

func TestDecryptNormalizesCiphertext(t *testing.T) {
	random := testRand(5)

	pub, priv, err := GenerateKeyPair(random, 64)
	require.NoError(t, err)

	c, err := Encrypt(big.NewInt(4242), pub)
	require.NoError(t, err)

	m1, err := Decrypt(c, priv)
	require.NoError(t, err)
	m2, err := Decrypt(new(big.Int).Add(c, pub.N), priv)
	require.NoError(t, err)
	assert.Zero(t, m1.Cmp(m2), "equal residues must decrypt identically")
}

func TestGenerateKeyPairInvalidBits(t *testing.T) {
	_, _, err := GenerateKeyPair(testRand(6), 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEncryptMalformedKey(t *testing.T) {
	_, err := Encrypt(big.NewInt(1), &PublicKey{E: big.NewInt(3), N: big.NewInt(1)})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Encrypt(big.NewInt(1), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
