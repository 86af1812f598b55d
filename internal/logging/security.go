// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events for security-relevant
// operations. Events are logged at info level with a fixed event field so
// they can be filtered downstream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthzFailure(subject, policy string) {
	s.l.Info("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("policy", policy),
	)
}

func (s *SecurityLogger) AccessBlocked(subject, reason string) {
	s.l.Info("access blocked",
		zap.String("event", "access_blocked"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}
