// Package testutil provides testing utilities for the sample-duck application.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks should be deferred at the start of tests that spawn goroutines.
// It verifies that no goroutines were leaked during the test.
func VerifyNoLeaks(t *testing.T, opts ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, opts...)
}

// IgnoreAudioDeviceGoroutines returns goleak options that ignore the worker
// threads spawned by the audio backend. The device owns those threads for the
// lifetime of the process; they are not test leaks.
func IgnoreAudioDeviceGoroutines() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreAnyFunction("github.com/gen2brain/malgo.deviceThread"),
	}
}
