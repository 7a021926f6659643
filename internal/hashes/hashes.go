// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hashes computes hex digests of text and files. The classic
// algorithms come from the standard library; SHA3-256 and BLAKE2b-256
// come from golang.org/x/crypto.
package hashes

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm indicates an algorithm name outside Algorithms().
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// fileChunkSize is the read size for streamed file hashing.
const fileChunkSize = 8192

// Algorithms returns the supported algorithm names in display order.
func Algorithms() []string {
	return []string{"md5", "sha1", "sha256", "sha512", "sha3-256", "blake2b-256"}
}

// newHasher returns a fresh hash state for the named algorithm.
func newHasher(algo string) (hash.Hash, error) {
	switch algo {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	case "sha3-256":
		return sha3.New256(), nil
	case "blake2b-256":
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// HashText returns the hex digest of the UTF-8 bytes of text.
func HashText(algo, text string) (string, error) {
	h, err := newHasher(algo)
	if err != nil {
		return "", err
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashReader streams r through the named algorithm.
func HashReader(algo string, r io.Reader) (string, error) {
	h, err := newHasher(algo)
	if err != nil {
		return "", err
	}
	buf := make([]byte, fileChunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile returns the hex digest of a file's contents, read in chunks
// so large files never load fully into memory.
func HashFile(algo, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return HashReader(algo, f)
}
