package keystore_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/jcpaschoal/admindashboard/foundation/keystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatePEMs(t *testing.T) (string, string) {
	t.Helper()

	pk, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	private := pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: mustPKCS8(t, pk),
	})

	pub, err := x509.MarshalPKIXPublicKey(&pk.PublicKey)
	require.NoError(t, err)

	public := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})

	return string(private), string(public)
}

func mustPKCS8(t *testing.T, pk *rsa.PrivateKey) []byte {
	b, err := x509.MarshalPKCS8PrivateKey(pk)
	require.NoError(t, err)
	return b
}

func TestLoadByFileSystem(t *testing.T) {
	private, public := generatePEMs(t)

	fsys := fstest.MapFS{
		"keys/signing.pem":  {Data: []byte(private)},
		"keys/provider.pem": {Data: []byte(public)},
		"keys/README.md":    {Data: []byte("ignored")},
	}

	ks := keystore.New()

	n, err := ks.LoadByFileSystem(fsys)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := ks.PrivateKey("signing")
	require.NoError(t, err)
	assert.Equal(t, private, got)

	derived, err := ks.PublicKey("signing")
	require.NoError(t, err)
	assert.Equal(t, public, derived)

	_, err = ks.PrivateKey("provider")
	assert.True(t, errors.Is(err, keystore.ErrKeyNotFound))

	pub, err := ks.PublicKey("provider")
	require.NoError(t, err)
	assert.Equal(t, public, pub)

	_, err = ks.PublicKey("missing")
	assert.True(t, errors.Is(err, keystore.ErrKeyNotFound))
}

func TestLoadByFileSystemRejectsGarbage(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.pem": {Data: []byte("not a pem")},
	}

	_, err := keystore.New().LoadByFileSystem(fsys)
	assert.Error(t, err)
}
