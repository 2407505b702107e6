// Package keystore implements the auth.KeyLookup interface. This implements
// an in-memory keystore for JWT support.
package keystore

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrKeyNotFound is returned when the kid is not in the store or only the
// public half of the pair was loaded.
var ErrKeyNotFound = errors.New("key not found")

type key struct {
	privatePEM string
	publicPEM  string
}

// KeyStore represents an in memory store implementation of the
// KeyLookup interface for use with the auth package.
type KeyStore struct {
	store map[string]key
}

// New constructs an empty KeyStore ready for use.
func New() *KeyStore {
	return &KeyStore{
		store: make(map[string]key),
	}
}

// LoadByFileSystem loads a set of RSA PEM files rooted inside of a directory.
// The name of each PEM file will be used as the key id. A file can hold a
// private key (PKCS1 or PKCS8) or, when only verification is needed such as
// with tokens minted by the identity provider, a public key.
func (ks *KeyStore) LoadByFileSystem(fsys fs.FS) (int, error) {
	fn := func(fileName string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walkdir failure: %w", err)
		}

		if dirEntry.IsDir() {
			return nil
		}

		if path.Ext(fileName) != ".pem" {
			return nil
		}

		file, err := fsys.Open(fileName)
		if err != nil {
			return fmt.Errorf("opening key file: %w", err)
		}
		defer file.Close()

		// limit PEM file size to 1 megabyte. This should be reasonable for
		// almost any PEM file and prevents shenanigans like linking the file
		// to /dev/random or something like that.
		data, err := io.ReadAll(io.LimitReader(file, 1024*1024))
		if err != nil {
			return fmt.Errorf("reading auth private key: %w", err)
		}

		k, err := toKey(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}

		ks.store[strings.TrimSuffix(dirEntry.Name(), ".pem")] = k

		return nil
	}

	if err := fs.WalkDir(fsys, ".", fn); err != nil {
		return 0, fmt.Errorf("walking directory: %w", err)
	}

	return len(ks.store), nil
}

// PrivateKey searches the key store for a given kid and returns the private
// key in PEM form.
func (ks *KeyStore) PrivateKey(kid string) (string, error) {
	k, found := ks.store[kid]
	if !found || k.privatePEM == "" {
		return "", fmt.Errorf("kid[%s]: %w", kid, ErrKeyNotFound)
	}

	return k.privatePEM, nil
}

// PublicKey searches the key store for a given kid and returns the public
// key in PEM form.
func (ks *KeyStore) PublicKey(kid string) (string, error) {
	k, found := ks.store[kid]
	if !found {
		return "", fmt.Errorf("kid[%s]: %w", kid, ErrKeyNotFound)
	}

	return k.publicPEM, nil
}

// =============================================================================

func toKey(data string) (key, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil {
		return key{}, errors.New("invalid key: key must be PEM encoded")
	}

	if block.Type == "PUBLIC KEY" || block.Type == "RSA PUBLIC KEY" {
		if _, err := jwt.ParseRSAPublicKeyFromPEM([]byte(data)); err != nil {
			return key{}, fmt.Errorf("parsing public key: %w", err)
		}

		return key{publicPEM: data}, nil
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(data))
	if err != nil {
		return key{}, fmt.Errorf("parsing private key: %w", err)
	}

	asn1Bytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return key{}, fmt.Errorf("marshaling public key: %w", err)
	}

	publicBlock := pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: asn1Bytes,
	}

	var b strings.Builder
	if err := pem.Encode(&b, &publicBlock); err != nil {
		return key{}, fmt.Errorf("encoding to public PEM: %w", err)
	}

	return key{privatePEM: data, publicPEM: b.String()}, nil
}
