// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package sec

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// NumericCode generates a uniformly random numeric confirmation code of the
// given number of digits.
//
// Each digit is drawn independently from crypto/rand, so codes carry no
// relationship to previously issued ones. Leading zeros are allowed.
func NumericCode(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("sec: code length must be positive, got %d", digits)
	}

	var builder strings.Builder
	builder.Grow(digits)

	ten := big.NewInt(10)
	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("sec: failed to read random digit: %w", err)
		}
		builder.WriteByte(byte('0' + n.Int64()))
	}

	return builder.String(), nil
}
