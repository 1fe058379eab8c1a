// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret123!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(hash, "Secret123!") {
		t.Fatal("hash contains the plaintext")
	}

	if !h.Verify(hash, "Secret123!") {
		t.Error("hash should verify against its password")
	}

	if h.Verify(hash, "secret123!") {
		t.Error("hash should not verify against a different password")
	}

	again, err := h.Hash("Secret123!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if again == hash {
		t.Error("hashes of the same password should be salted differently")
	}
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	testCases := []struct {
		name     string
		cost     int
		expected int
	}{
		{name: "configured", cost: 12, expected: 12},
		{name: "below minimum", cost: 1, expected: bcrypt.DefaultCost},
		{name: "above maximum", cost: 40, expected: bcrypt.DefaultCost},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewBcryptHasher(tc.cost).cost; got != tc.expected {
				t.Errorf("expected cost %d, got %d", tc.expected, got)
			}
		})
	}
}
