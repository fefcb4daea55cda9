package mail

import (
	"context"
	"fmt"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
	"gopkg.in/gomail.v2"
)

const DefaultFromName = "Sistema de Pedidos FOGÁS"

func NewEmailSender(host string, port int, user, password, fromName string) *EmailSender {
	if fromName == "" {
		fromName = DefaultFromName
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		FromName: fromName,
	}
}

// NewMessage monta a mensagem SMTP de um digest sem enviá-la.
func (s *EmailSender) NewMessage(d entity.Digest) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.User, s.FromName)
	m.SetHeader("To", d.To)
	m.SetHeader("Subject", d.Subject)
	m.SetBody("text/html", d.HTMLBody)
	return m
}

func (s *EmailSender) SendDigest(ctx context.Context, d entity.Digest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.To == "" {
		return fmt.Errorf("destinatário vazio para %s", d.Colaborador)
	}

	dialer := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := dialer.DialAndSend(s.NewMessage(d)); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
