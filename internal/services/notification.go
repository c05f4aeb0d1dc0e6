package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	"github.com/monokpe/james-ecom/pkg/sendgrid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error)
	NotifyOrderConfirmed(ctx context.Context, recipient string, orderID uuid.UUID)
	NotifyLowStock(ctx context.Context, productID int64, productName string, stockLevel int64)
	GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo              repository.NotificationRepository
	emailService      sendgrid.EmailService
	lowStockRecipient string
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService, lowStockRecipient string) NotificationService {
	return &notificationService{repo: repo, emailService: emailService, lowStockRecipient: lowStockRecipient}
}

// SendEmail records the notification, dispatches it and updates the record
// with the outcome.
func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error) {

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.NotificationStatusPending,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {

		notification.Status = models.NotificationStatusFailed
		notification.Error = err.Error()

		_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.NotificationStatusFailed, notification.Error)

		return nil, errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	notification.Status = models.NotificationStatusSent
	now := time.Now()
	notification.SentAt = &now

	_ = n.repo.UpdateNotificationStatus(ctx, notification.ID, models.NotificationStatusSent, "")

	return &models.NotificationResponse{
		ID:        notification.ID,
		Type:      notification.Type,
		Status:    notification.Status,
		CreatedAt: notification.CreatedAt,
		SentAt:    notification.SentAt,
	}, nil
}

// NotifyOrderConfirmed sends the order-confirmation email. Best-effort:
// callers have already committed the payment and must not fail on a
// notification problem, so errors stop here.
func (n *notificationService) NotifyOrderConfirmed(ctx context.Context, recipient string, orderID uuid.UUID) {

	req := &models.EmailNotificationRequest{
		Recipient: recipient,
		Subject:   "Order Confirmation",
		Content:   fmt.Sprintf("Your order %s has been processed successfully.", orderID),
	}

	if _, err := n.SendEmail(ctx, req); err != nil {
		slog.Warn("Order confirmation notification failed",
			slog.String("orderId", orderID.String()), slog.String("error", err.Error()))
	}
}

// NotifyLowStock alerts the ops inbox that a product dropped to or below
// the low-stock threshold. Best-effort, same as above.
func (n *notificationService) NotifyLowStock(ctx context.Context, productID int64, productName string, stockLevel int64) {

	if n.lowStockRecipient == "" {
		return
	}

	req := &models.EmailNotificationRequest{
		Recipient: n.lowStockRecipient,
		Subject:   "Low stock alert",
		Content:   fmt.Sprintf("Product %q (id %d) is down to %d units.", productName, productID, stockLevel),
	}

	if _, err := n.SendEmail(ctx, req); err != nil {
		slog.Warn("Low stock notification failed",
			slog.Int64("productId", productID), slog.String("error", err.Error()))
	}
}

func (n *notificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {

	notification, err := n.repo.GetNotification(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Notification not found").WithError(err)
	}

	return notification, nil
}

func (n *notificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {

	notifications, total, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch notifications").WithError(err)
	}

	return notifications, total, nil
}
