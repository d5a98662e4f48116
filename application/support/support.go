package support

import (
	"context"
	"database/sql"
	"errors"

	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
	supportrepo "github.com/muhammadheryan/car-market/repository/support"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	"github.com/muhammadheryan/car-market/utils/logger"
	"go.uber.org/zap"
)

type SupportApp interface {
	CreateMessage(ctx context.Context, req *model.CreateSupportMessageRequest) (*model.SupportMessageEntity, error)
	ListMessages(ctx context.Context) ([]model.SupportMessageEntity, error)
	DeleteMessage(ctx context.Context, id uint64) error
}

type supportAppImpl struct {
	supportRepo supportrepo.SupportRepository
}

func NewSupportApp(supportRepo supportrepo.SupportRepository) SupportApp {
	return &supportAppImpl{supportRepo: supportRepo}
}

func (s *supportAppImpl) CreateMessage(ctx context.Context, req *model.CreateSupportMessageRequest) (*model.SupportMessageEntity, error) {
	msg, err := s.supportRepo.Create(ctx, &model.SupportMessageEntity{
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		logger.Error("[CreateMessage] error supportRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	logger.Info("[CreateMessage] message received", zap.Uint64("message_id", msg.ID))
	return msg, nil
}

func (s *supportAppImpl) ListMessages(ctx context.Context) ([]model.SupportMessageEntity, error) {
	msgs, err := s.supportRepo.List(ctx)
	if err != nil {
		logger.Error("[ListMessages] error supportRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	return msgs, nil
}

func (s *supportAppImpl) DeleteMessage(ctx context.Context, id uint64) error {
	err := s.supportRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return cerr.SetCustomError(constant.ErrMessageNotFound)
	}
	if err != nil {
		logger.Error("[DeleteMessage] error supportRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrPersistence)
	}
	return nil
}
