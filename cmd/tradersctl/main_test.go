// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/traders/internal/platform/constants"
	"github.com/taibuivan/traders/internal/platform/sec"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestProducts_Table(t *testing.T) {
	out, err := run(t, "products", "--sort", "price-low", "--limit", "3")
	require.NoError(t, err)

	cheapest := strings.Index(out, "Cloud Storage Solution")
	require.GreaterOrEqual(t, cheapest, 0)
	assert.Less(t, cheapest, strings.Index(out, "Executive Office Furniture Set"))
	assert.Contains(t, out, "₹49,999")
	assert.NotContains(t, out, "Network Security System")
	assert.Contains(t, out, "page 1/3, 8 matching")
}

func TestProducts_JSON(t *testing.T) {
	out, err := run(t, "products", "--category", "software", "--filter", "fastDelivery", "--json")
	require.NoError(t, err)

	var listing struct {
		Items []struct {
			Category string `json:"category"`
			Delivery string `json:"delivery"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.NotEmpty(t, listing.Items)
	for _, item := range listing.Items {
		assert.Equal(t, "Software", item.Category)
		assert.Equal(t, "Instant", item.Delivery)
	}
}

func TestProducts_UnknownSort(t *testing.T) {
	_, err := run(t, "products", "--sort", "cheapest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--sort: Unknown sort order")
}

func TestGallery_Popular(t *testing.T) {
	out, err := run(t, "gallery", "--filter", "most-popular", "--sort", "popular")
	require.NoError(t, err)

	first := strings.Index(out, "Technology Lab")
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, strings.Index(out, "Innovation Hub"))
	assert.NotContains(t, out, "Warehouse Facility")
	assert.Contains(t, out, "4 matching")
}

func TestGallery_Options(t *testing.T) {
	out, err := run(t, "gallery", "--options")
	require.NoError(t, err)
	assert.Contains(t, out, "categories: All, Office")
	assert.Contains(t, out, "most-popular")
}

func TestPrice(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"price", "₹2,49,999"}, "24999900 paise\t₹2,49,999"},
		{[]string{"price", "Rs. 1249.5"}, "124950 paise\t₹1,249.50"},
		{[]string{"price", "--paise", "1234567800"}, "1234567800 paise\t₹1,23,45,678"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	_, err := run(t, "price", "free")
	assert.Error(t, err)
}

func TestToken_RoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyPath := filepath.Join(t.TempDir(), "private.pem")
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	require.NoError(t, os.WriteFile(keyPath, privatePEM, 0o600))

	out, err := run(t, "token", "--key", keyPath, "--subject", "ops@tradersindia.com", "--role", "admin")
	require.NoError(t, err)

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	verifier, err := sec.NewVerifierFromPEM(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER}), constants.AuthIssuer)
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "ops@tradersindia.com", claims.Subject)

	_, err = run(t, "token", "--key", keyPath, "--subject", "x", "--role", "root")
	assert.Error(t, err)
}

func TestDBSeed_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := run(t, "db", "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database")
}
