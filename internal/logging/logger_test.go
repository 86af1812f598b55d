// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthzFailure("user-1", "tenant_owner")
	l.Security().AccessBlocked("user-1", "maintenance")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
