// Package certs generates local self-signed certificates for purchased
// domains. Generation is entirely local file output; no remote calls.
package certs

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"software.sslmate.com/src/go-pkcs12"

	"github.com/webfleet-dev/webfleet/internal/util/naming"
)

// Bundle holds the paths of the generated certificate artifacts.
type Bundle struct {
	CertPath string // PEM-encoded certificate
	KeyPath  string // PEM-encoded private key
	PFXPath  string // password-protected PKCS#12 bundle
}

const keyBits = 2048

// CreateSelfSignedCertificate generates an RSA key and a one-year
// self-signed certificate for domainName (and its wildcard), writing the
// PEM pair plus a PKCS#12 bundle encrypted with password into outputDir.
func CreateSelfSignedCertificate(domainName, outputDir, password string) (*Bundle, error) {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("failed to generate serial number: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: domainName},
		DNSNames:     []string{domainName, "*." + domainName},
		NotBefore:    now.Add(-time.Hour),
		NotAfter:     now.AddDate(1, 0, 0),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated certificate: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := filepath.Join(outputDir, naming.CertificateFile(domainName))
	bundle := &Bundle{
		CertPath: base + ".cer",
		KeyPath:  base + ".key",
		PFXPath:  base + ".pfx",
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(bundle.CertPath, certPEM, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write certificate: %w", err)
	}

	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if err := os.WriteFile(bundle.KeyPath, keyPEM, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write private key: %w", err)
	}

	pfx, err := pkcs12.Modern.Encode(key, cert, nil, password)
	if err != nil {
		return nil, fmt.Errorf("failed to encode PKCS#12 bundle: %w", err)
	}
	if err := os.WriteFile(bundle.PFXPath, pfx, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write PKCS#12 bundle: %w", err)
	}

	return bundle, nil
}
