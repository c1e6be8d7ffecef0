package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, operator string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		Operator: operator,
	}
}

// SendPositiveReplyAlert avisa o operador que um lead respondeu
// interessado. É o email que vale dinheiro, não pode passar batido.
func (s *EmailSender) SendPositiveReplyAlert(businessName, leadEmail, snippet string) error {
	data := PositiveReplyData{
		BusinessName: businessName,
		LeadEmail:    leadEmail,
		Snippet:      snippet,
	}

	subject := fmt.Sprintf("🔥 Lead quente: %s respondeu!", businessName)
	return s.send(subject, filepath.Join("templates", "positive_reply.html"), data)
}

func (s *EmailSender) SendCampaignReport(sentCount int) error {
	data := CampaignReportData{SentCount: sentCount}

	subject := fmt.Sprintf("Campanha disparada: %d emails enviados", sentCount)
	return s.send(subject, filepath.Join("templates", "campaign_report.html"), data)
}

func (s *EmailSender) send(subject, tmplPath string, data interface{}) error {
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.User)
	m.SetHeader("To", s.Operator)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
