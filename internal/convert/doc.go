// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert implements the unit conversion core: a static registry
// of NIST-aligned unit definitions, a decimal conversion pipeline, the
// category catalog presented by the UI, and the result formatter.
//
// All arithmetic runs on cockroachdb/apd decimals with a 200-digit
// context, so conversion factors taken from NIST SP 811 and Handbook 44
// are applied without binary floating-point representation error.
package convert
