// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCode hashes a plain-text confirmation code using the bcrypt algorithm.
//
// Codes are short-lived but still never stored in plain text: a leaked
// code store must not be redeemable for bearer tokens.
func HashCode(plainCode string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainCode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash code: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckCodeHash compares a plain-text confirmation code with its hashed version.
func CheckCodeHash(plainCode, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainCode))
	return err == nil
}
