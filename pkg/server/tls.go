package server

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"time"

	"assetmgmt/pkg/config"
)

var ErrNoCertificates = errors.New("no TLS certificates available")

// TLSConfig resolves certificates in order: cert/key files, inline PEM, then a generated
// self-signed certificate outside production. When files are used their paths are returned so
// the caller can hand them to ListenAndServeTLS.
func TLSConfig(s config.TLSSettings, production bool) (cfg *tls.Config, certFile, keyFile string, err error) {
	var cert tls.Certificate

	switch {
	case s.CertPath != "" && s.KeyPath != "":
		if cert, err = tls.LoadX509KeyPair(s.CertPath, s.KeyPath); err != nil {
			return nil, "", "", err
		}
		certFile, keyFile = s.CertPath, s.KeyPath
	case s.CertPEM != "" && s.KeyPEM != "":
		if cert, err = tls.X509KeyPair([]byte(s.CertPEM), []byte(s.KeyPEM)); err != nil {
			return nil, "", "", err
		}
	case !production && s.AllowSelfSigned:
		if cert, err = selfSignedCert(); err != nil {
			return nil, "", "", err
		}
	default:
		return nil, "", "", ErrNoCertificates
	}

	return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, certFile, keyFile, nil
}

// selfSignedCert creates a one-year localhost certificate.
func selfSignedCert() (tls.Certificate, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return tls.Certificate{}, err
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, err
	}

	tmpl := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: "localhost"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return tls.X509KeyPair(certPEM, keyPEM)
}
