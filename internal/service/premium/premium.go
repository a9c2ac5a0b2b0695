// Package premium issues and verifies paywall passes: short ES256-signed
// JWTs handed to subscribed users and required for premium content. The
// signing key is generated on first boot and kept in the data directory as a
// JWK.
package premium

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/rakutentech/jwk-go/jwk"

	"github.com/strivefit/strivefit/internal/model"
)

const PlanMonthly = "monthly"

type PassClaims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

type service struct {
	privateKey *ecdsa.PrivateKey
	validity   time.Duration
}

func New(keyFile string, validity time.Duration) (*service, error) {
	privateKey, err := loadOrCreateKey(keyFile)
	if err != nil {
		return nil, err
	}
	return &service{privateKey: privateKey, validity: validity}, nil
}

func loadOrCreateKey(keyFile string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(keyFile)
	if err == nil {
		keySpec, err := jwk.Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing premium signing key: %w", err)
		}
		privateKey, ok := keySpec.Key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("premium signing key is not an ECDSA private key")
		}
		return privateKey, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading premium signing key: %w", err)
	}

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating premium signing key: %w", err)
	}

	ks := jwk.NewSpec(privateKey)
	rawJWK, err := ks.ToJWK()
	if err != nil {
		return nil, fmt.Errorf("creating JWK: %w", err)
	}
	rawJWK.Use = "sig"
	rawJWK.Alg = "ES256"
	rawJWK.Kid = model.CreateID()

	keyData, err := rawJWK.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshalling JWK: %w", err)
	}

	if err := os.MkdirAll(path.Dir(keyFile), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(keyFile, keyData, 0o600); err != nil {
		return nil, fmt.Errorf("writing premium signing key: %w", err)
	}

	return privateKey, nil
}

// Subscribe issues a pass for the user. The pass outlives any one session,
// which is why it is signed while session tokens are not.
func (s *service) Subscribe(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := PassClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(user.UserID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.validity).Unix(),
		},
		Email: user.Email,
		Plan:  PlanMonthly,
	}

	pass, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("signing premium pass: %w", err)
	}
	return pass, nil
}

// Verify checks the pass signature and expiry and returns its claims.
func (s *service) Verify(pass string) (*PassClaims, error) {
	claims := &PassClaims{}
	token, err := jwt.ParseWithClaims(pass, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return &s.privateKey.PublicKey, nil
	})
	if err != nil {
		return nil, model.ErrorPremiumRequired
	}
	if !token.Valid {
		return nil, model.ErrorPremiumRequired
	}
	return claims, nil
}
