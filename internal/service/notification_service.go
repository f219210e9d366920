package service

import (
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
	"naijavalue/pkg/logger"
)

// NotificationPusher delivers a stored notification to connected websocket
// clients. The ws hub implements it; tests leave it nil.
type NotificationPusher interface {
	Push(n *models.Notification)
}

type NotificationService struct {
	store  repository.NotificationStore
	pusher NotificationPusher
	log    *logger.Logger
}

func NewNotificationService(store repository.NotificationStore, pusher NotificationPusher, log *logger.Logger) *NotificationService {
	return &NotificationService{store: store, pusher: pusher, log: log}
}

// Notify stores a per-user notification and pushes it to the user's open
// sockets. Notification failures never fail the workflow that triggered them.
func (s *NotificationService) Notify(userID uint, title, message string) {
	if s == nil {
		return
	}
	n := &models.Notification{
		UserID:  &userID,
		Title:   title,
		Message: message,
	}
	if err := s.store.Create(n); err != nil {
		s.log.WithError(err).Warn("notification: failed to store")
		return
	}
	if s.pusher != nil {
		s.pusher.Push(n)
	}
}

// Broadcast stores a global notification visible to every user.
func (s *NotificationService) Broadcast(title, message string) (*models.Notification, error) {
	n := &models.Notification{
		Title:    title,
		Message:  message,
		IsGlobal: true,
	}
	if err := s.store.Create(n); err != nil {
		return nil, err
	}
	if s.pusher != nil {
		s.pusher.Push(n)
	}
	return n, nil
}

func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	return s.store.ListForUser(userID)
}

func (s *NotificationService) MarkRead(id uint) error {
	return s.store.MarkRead(id)
}
