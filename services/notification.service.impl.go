package services

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"booking-service/config"
	"booking-service/domain"
)

type NotificationServiceImpl struct {
	config *config.Config
	logger *logrus.Logger
}

func NewNotificationServiceImpl(config *config.Config, logger *logrus.Logger) NotificationService {
	return &NotificationServiceImpl{config: config, logger: logger}
}

func (s *NotificationServiceImpl) SendBookingConfirmation(booking *domain.Booking) error {
	var body bytes.Buffer
	body.WriteString(fmt.Sprintf(
		"Your booking %s for %s on %s is confirmed.\nAmount paid: %d INR.",
		booking.Reference, booking.ProductName,
		booking.TravelDate.Format("02 Jan 2006"), booking.CurrentAmount))

	return s.send(booking.ContactEmail, "Yorker Holidays - Booking Confirmed", body.String())
}

func (s *NotificationServiceImpl) SendCancellationNotice(booking *domain.Booking, refundAmount int64) error {
	var body bytes.Buffer
	body.WriteString(fmt.Sprintf(
		"Your booking %s for %s has been cancelled.\nRefund amount: %d INR.",
		booking.Reference, booking.ProductName, refundAmount))

	return s.send(booking.ContactEmail, "Yorker Holidays - Booking Cancelled", body.String())
}

func (s *NotificationServiceImpl) send(to, subject, text string) error {
	m := gomail.NewMessage()

	m.SetHeader("From", s.config.EmailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUser, s.config.SMTPPass)

	err := d.DialAndSend(m)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"path": "services/notification"}).Error("Could not send email: ", err)
		return err
	}
	return nil
}
