// Package fstest provides a conformance test suite for validating backend
// filesystem implementations against the wire.FileSystem contract.
//
// This package contains test functions that can be imported and executed by
// backend packages to verify they honour the wire contract: error codes,
// open mode gating and rename semantics.
//
// The test suite is designed to validate interface contracts, not backend-specific
// behavior. Backends differ in how they store directories, and the tests
// adapt to that through FSTestConfig.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func() wire.FileSystem {
//	        return mybackend.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/vfs/fs/wire"
)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// VirtualDirectories indicates directories are virtual (e.g., S3 prefixes).
	// When true, a directory that was only implied by a file disappears once
	// the file is removed.
	VirtualDirectories bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "ManageFS/RenameDirectory").
	SkipTests []string
}

// POSIXTestConfig returns configuration for POSIX-like filesystems (local, memory).
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{VirtualDirectories: false}
}

// S3TestConfig returns configuration for S3-like filesystems (MinIO, S3).
func S3TestConfig() FSTestConfig {
	return FSTestConfig{VirtualDirectories: true}
}

// DirMaker is implemented by backends that can provision directories outside
// the wire contract. Tests that need an empty directory are skipped for
// backends without it.
type DirMaker interface {
	MkdirAll(name string) error
}

// TestSuite runs all applicable conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each test.
// Uses POSIXTestConfig() by default.
func TestSuite(t *testing.T, newFS func() wire.FileSystem) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() wire.FileSystem, config FSTestConfig) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	groups := []struct {
		name string
		run  func(*testing.T, wire.FileSystem, FSTestConfig)
	}{
		{"CreateFS", TestCreateFSWithConfig},
		{"FileIO", TestFileIOWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"Concurrency", TestConcurrencyWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			g.run(t, newFS(), config)
		})
	}
}
