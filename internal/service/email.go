package service

import (
	"context"
	"fmt"

	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridService struct {
	apiKey    string
	fromEmail string
	fromName  string
	company   config.CompanyConfig
}

func NewEmailService(cfg config.EmailConfig, company config.CompanyConfig) EmailService {
	return &sendGridService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.From,
		fromName:  cfg.FromName,
		company:   company,
	}
}

func (s *sendGridService) SendContract(ctx context.Context, rental *domain.Rental, vehicle *domain.Vehicle, customer *domain.Customer) error {
	subject := fmt.Sprintf("Rental contract #%d - %s", rental.ID, vehicle.Brand)

	plainText := fmt.Sprintf(
		"Rental contract #%d\n\nLessor: %s, %s (Reg. No. %s)\nLessee: %s\n\nVehicle: %s (%s)\nFrom: %s\nTo: %s\nTotal price: %d CZK\n",
		rental.ID,
		s.company.Name, s.company.Address, s.company.RegNo,
		customer.FullName(),
		vehicle.Brand, vehicle.LicensePlate,
		rental.StartDate.Format("02.01.2006 15:04"),
		rental.EndDate.Format("02.01.2006 15:04"),
		rental.TotalPrice,
	)

	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental contract #%d</h2>
				<p><strong>Lessor:</strong> %s, %s (Reg. No. %s)</p>
				<p><strong>Lessee:</strong> %s</p>
				<p><strong>Vehicle:</strong> %s (%s)</p>
				<p><strong>From:</strong> %s<br>
				   <strong>To:</strong> %s</p>
				<p><strong>Total price:</strong> %d CZK</p>
				<p><a href="%s">%s</a></p>
			</body>
		</html>
	`,
		rental.ID,
		s.company.Name, s.company.Address, s.company.RegNo,
		customer.FullName(),
		vehicle.Brand, vehicle.LicensePlate,
		rental.StartDate.Format("02.01.2006 15:04"),
		rental.EndDate.Format("02.01.2006 15:04"),
		rental.TotalPrice,
		s.company.Web, s.company.Name,
	)

	return s.send(customer.Email, customer.FullName(), subject, plainText, htmlContent)
}

func (s *sendGridService) SendRequestReceived(ctx context.Context, req *domain.RentalRequest) error {
	subject := fmt.Sprintf("We received your rental request - %s", s.company.Name)
	name := req.FirstName + " " + req.LastName
	plainText := fmt.Sprintf(
		"Hello %s,\n\nwe received your rental request and will get back to you shortly.\n\n%s\n%s\n",
		name, s.company.Name, s.company.Web,
	)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hello %s,</p>
				<p>we received your rental request and will get back to you shortly.</p>
				<p>%s<br><a href="%s">%s</a></p>
			</body>
		</html>
	`, name, s.company.Name, s.company.Web, s.company.Web)

	return s.send(req.Email, name, subject, plainText, htmlContent)
}

func (s *sendGridService) SendInspectionWarning(ctx context.Context, to string, vehicle *domain.Vehicle) error {
	due := "unknown"
	if vehicle.InspectionDue != nil {
		due = vehicle.InspectionDue.Format("02.01.2006")
	}
	subject := fmt.Sprintf("Inspection due soon: %s (%s)", vehicle.Brand, vehicle.LicensePlate)
	plainText := fmt.Sprintf("Technical inspection for %s (%s) is due on %s.", vehicle.Brand, vehicle.LicensePlate, due)
	htmlContent := fmt.Sprintf("<p>Technical inspection for <strong>%s</strong> (%s) is due on <strong>%s</strong>.</p>", vehicle.Brand, vehicle.LicensePlate, due)

	return s.send(to, "", subject, plainText, htmlContent)
}

func (s *sendGridService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send_email", err, "to", to, "subject", subject)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
