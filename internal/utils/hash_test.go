// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesVerifiableDigest(t *testing.T) {
	digest, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if digest == "" {
		t.Fatal("digest is empty")
	}

	if digest == "secret" {
		t.Fatal("digest must not equal the plaintext")
	}

	ok, err := VerifyPassword("secret", digest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("round trip verify must succeed for the original plaintext")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	d1, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d2, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// each digest carries its own random salt
	if d1 == d2 {
		t.Fatal("two digests of the same plaintext must not be identical")
	}
}

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	digest, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost != PasswordHashCost {
		t.Errorf("expected cost %d, got %d", PasswordHashCost, cost)
	}
}

func TestHashPassword_TooLongPlaintext(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	_, err := HashPassword(strings.Repeat("x", 100))
	if !errors.Is(err, ErrHashingFailure) {
		t.Fatalf("expected ErrHashingFailure, got %v", err)
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := VerifyPassword("not-the-secret", digest)
	if err != nil {
		t.Fatalf("mismatch must not produce an error, got %v", err)
	}
	if ok {
		t.Fatal("verify must fail for a different plaintext")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	ok, err := VerifyPassword("secret", "not-a-bcrypt-digest")
	if ok {
		t.Fatal("malformed digest must not verify")
	}
	if !errors.Is(err, ErrHashingFailure) {
		t.Fatalf("expected ErrHashingFailure, got %v", err)
	}
}
