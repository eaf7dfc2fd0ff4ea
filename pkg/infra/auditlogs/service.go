package auditlogs

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/auditlog"
)

type Record struct {
	ActorID    uuid.UUID
	ActorEmail string
	Action     string
	TargetType string
	TargetID   string
	Detail     string
	IPAddress  string
}

type Service interface {
	Write(ctx context.Context, record Record)
}

type service struct {
	repository auditlog.Repository
	logger     *logrus.Logger
}

func NewService(repository auditlog.Repository, logger *logrus.Logger) Service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

// Write persists an audit entry. Failures are logged and swallowed so an
// audit problem never fails the request that produced it.
func (s *service) Write(ctx context.Context, record Record) {
	entry := &auditlog.Entry{
		ID:         uuid.New(),
		ActorID:    record.ActorID,
		ActorEmail: record.ActorEmail,
		Action:     record.Action,
		TargetType: record.TargetType,
		TargetID:   record.TargetID,
		Detail:     record.Detail,
		IPAddress:  record.IPAddress,
	}
	if err := s.repository.Create(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("action", record.Action).Error("failed to write audit log entry")
	}
}
