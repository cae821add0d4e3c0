package service

import (
	"errors"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"github.com/eventify/eventify-backend/pkg/captcha"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MessageService struct {
	messageRepo   repository.MessageRepository
	captchaSecret string
	logger        *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, captchaSecret string, logger *zap.Logger) *MessageService {
	return &MessageService{
		messageRepo:   messageRepo,
		captchaSecret: captchaSecret,
		logger:        logger,
	}
}

func (s *MessageService) Create(req models.MessageRequest) (*models.Message, error) {
	// Captcha is only enforced when a secret is configured.
	if s.captchaSecret != "" {
		ok, err := captcha.VerifyTurnstile(s.captchaSecret, req.CaptchaToken)
		if err != nil {
			s.logger.Warn("captcha verification error", zap.Error(err))
			return nil, ErrCaptchaFailed
		}
		if !ok {
			return nil, ErrCaptchaFailed
		}
	}

	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *MessageService) GetAll() ([]models.Message, error) {
	return s.messageRepo.GetAll()
}

func (s *MessageService) Delete(id uint) error {
	if err := s.messageRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
