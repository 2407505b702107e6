// This program performs administrative tasks for the admin dashboard service.
package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/app/sdk/auth"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus"
	"github.com/jcpaschoal/admindashboard/business/domain/businessbus/stores/businessdb"
	"github.com/jcpaschoal/admindashboard/business/sdk/sqldb"
	"github.com/jcpaschoal/admindashboard/foundation/keystore"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries the settings the commands share with the service.
type Config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"admindashboard"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Auth struct {
		KeysFolder string `envconfig:"AUTH_KEYS_FOLDER" default:"zarf/keys/"`
		Issuer     string `envconfig:"AUTH_ISSUER" default:"admindashboard"`
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN-TOOL", nil)
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "admin", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: provision, genkey, gentoken")
		return nil
	}

	switch os.Args[1] {
	case "provision":
		return runProvision(ctx, log, cfg, os.Args[2:])
	case "genkey":
		return runGenKey(cfg, os.Args[2:])
	case "gentoken":
		return runGenToken(log, cfg, os.Args[2:])
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runProvision creates the business of a newly confirmed account together
// with its owner.
func runProvision(ctx context.Context, log *logger.Logger, cfg Config, args []string) error {
	cmd := flag.NewFlagSet("provision", flag.ExitOnError)
	sub := cmd.String("sub", "", "Identity provider subject (Required)")
	email := cmd.String("email", "", "Confirmed email (Required)")
	cmd.Parse(args)

	if *sub == "" || *email == "" {
		cmd.PrintDefaults()
		return errors.New("missing required fields")
	}

	addr, err := mail.ParseAddress(*email)
	if err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer db.Close()

	bizBus := businessbus.NewCore(log, businessdb.NewStore(log, db))

	biz, err := bizBus.Provision(ctx, businessbus.NewOwner{
		Subject: *sub,
		Email:   *addr,
	})
	if err != nil {
		return fmt.Errorf("provision failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: Business provisioned!\nID: %s\nName: %s\nOwner: %s\n", biz.ID, biz.Name, *sub)
	return nil
}

// runGenKey writes a new RSA private key into the keys folder. The file
// name is the key id.
func runGenKey(cfg Config, args []string) error {
	cmd := flag.NewFlagSet("genkey", flag.ExitOnError)
	kid := cmd.String("kid", uuid.NewString(), "Key id, used as the file name")
	bits := cmd.Int("bits", 2048, "Key size in bits")
	cmd.Parse(args)

	privateKey, err := rsa.GenerateKey(rand.Reader, *bits)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	if err := os.MkdirAll(cfg.Auth.KeysFolder, 0o700); err != nil {
		return fmt.Errorf("creating keys folder: %w", err)
	}

	path := filepath.Join(cfg.Auth.KeysFolder, *kid+".pem")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating private file: %w", err)
	}
	defer file.Close()

	block := pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}

	if err := pem.Encode(file, &block); err != nil {
		return fmt.Errorf("encoding to private file: %w", err)
	}

	fmt.Printf("\nSUCCESS: Key written!\nKID: %s\nFile: %s\n", *kid, path)
	return nil
}

// runGenToken signs a token for a subject with a key from the keys folder.
func runGenToken(log *logger.Logger, cfg Config, args []string) error {
	cmd := flag.NewFlagSet("gentoken", flag.ExitOnError)
	sub := cmd.String("sub", "", "Subject the token is issued for (Required)")
	kid := cmd.String("kid", "", "Key id to sign with (Required)")
	email := cmd.String("email", "", "Email claim")
	ttl := cmd.Duration("ttl", 8*time.Hour, "Token lifetime")
	cmd.Parse(args)

	if *sub == "" || *kid == "" {
		cmd.PrintDefaults()
		return errors.New("missing required fields")
	}

	ks := keystore.New()
	if _, err := ks.LoadByFileSystem(os.DirFS(cfg.Auth.KeysFolder)); err != nil {
		return fmt.Errorf("loading keys: %w", err)
	}

	a, err := auth.New(auth.Config{
		Log:       log,
		KeyLookup: ks,
		Issuer:    cfg.Auth.Issuer,
		Mode:      auth.ModeJWT,
	})
	if err != nil {
		return fmt.Errorf("constructing auth: %w", err)
	}

	token, err := a.GenerateToken(*kid, *sub, *email, *ttl)
	if err != nil {
		return fmt.Errorf("generating token: %w", err)
	}

	fmt.Printf("-----BEGIN TOKEN-----\n%s\n-----END TOKEN-----\n", token)
	return nil
}
