// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package emailnorm canonicalizes email addresses before they are stored or
// looked up.
//
// # Rules
//
// The local part is case-sensitive by RFC 5321 and is kept as typed. The
// domain is case-insensitive and is lowercased, so "Ann@Example.COM" and
// "Ann@example.com" are the same account.
package emailnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of address.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFC (composes é from e + combining acute).
// 3. Lowercases everything after the last '@'.
//
// Input without '@' is returned trimmed and NFC-normalized only; rejecting it
// is the validator's job.
func Normalize(address string) string {
	// 1. Trim and compose
	result := norm.NFC.String(strings.TrimSpace(address))

	// 2. Lowercase the domain
	at := strings.LastIndexByte(result, '@')
	if at < 0 {
		return result
	}

	return result[:at+1] + strings.ToLower(result[at+1:])
}
