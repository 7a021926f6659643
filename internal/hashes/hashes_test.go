// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package hashes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// TEXT HASH TESTS
// =============================================================================

func TestHashText_KnownDigests(t *testing.T) {
	testCases := []struct {
		algo     string
		expected string
	}{
		{"md5", "8b1a9953c4611296a827abf8c47804d7"},
		{"sha1", "f7ff9e8b7bb2e09b70935a5d785e0cc5d9d0abf0"},
		{"sha256", "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969"},
		{"sha512", "3615f80c9d293ed7402687f94b22d58e529b8cc7916f8fac7fddf7fbd5af4cf777d3d795a7a00a16bf7e7f3fb9561ee9baae480da9fe7a18769e71886b03f315"},
		{"sha3-256", "8ca66ee6b2fe4bb928a8e3cd2f508de4119c0895f22e011117e22cf9b13de7ef"},
		{"blake2b-256", "8b7ca7d27d9fc55fa30abfe515b3afb24e3fe89fdd02e2ac92bca2c96680642e"},
	}

	for _, tc := range testCases {
		t.Run(tc.algo, func(t *testing.T) {
			got, err := HashText(tc.algo, "Hello")
			if err != nil {
				t.Fatalf("HashText(%s) failed: %v", tc.algo, err)
			}
			if got != tc.expected {
				t.Errorf("HashText(%s, Hello) = %s, want %s", tc.algo, got, tc.expected)
			}
		})
	}
}

func TestHashText_EmptyInput(t *testing.T) {
	got, err := HashText("sha256", "")
	if err != nil {
		t.Fatalf("HashText failed: %v", err)
	}
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("sha256 of empty = %s, want %s", got, want)
	}
}

func TestHashText_UnknownAlgorithm(t *testing.T) {
	if _, err := HashText("crc32", "x"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("HashText(crc32) = %v, want ErrUnknownAlgorithm", err)
	}
}

// =============================================================================
// FILE HASH TESTS
// =============================================================================

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("Hello"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := HashFile("sha256", path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969" {
		t.Errorf("HashFile digest = %s", got)
	}
}

func TestHashFile_MatchesText(t *testing.T) {
	// A file larger than one read chunk must hash identically to the
	// same content hashed as text.
	content := strings.Repeat("0123456789abcdef", 4096) // 64 KiB
	path := filepath.Join(t.TempDir(), "large.bin")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	for _, algo := range Algorithms() {
		fromFile, err := HashFile(algo, path)
		if err != nil {
			t.Fatalf("HashFile(%s) failed: %v", algo, err)
		}
		fromText, err := HashText(algo, content)
		if err != nil {
			t.Fatalf("HashText(%s) failed: %v", algo, err)
		}
		if fromFile != fromText {
			t.Errorf("%s: file digest %s != text digest %s", algo, fromFile, fromText)
		}
	}
}

func TestHashFile_Missing(t *testing.T) {
	if _, err := HashFile("sha256", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing file")
	}
}
