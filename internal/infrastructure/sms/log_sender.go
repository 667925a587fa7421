package sms

import (
	"context"

	"github.com/tamirban/tamirban-api/pkg/logger"
)

// LogSender writes codes to the log instead of a gateway. Used outside
// production while the SMS provider account is rotated per deployment.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender builds the sender.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// SendOTP logs the code at info level.
func (s *LogSender) SendOTP(_ context.Context, phone, code string) error {
	s.log.Info().Str("phone", phone).Str("code", code).Msg("otp issued")
	return nil
}
