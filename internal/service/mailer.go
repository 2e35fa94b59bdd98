package service

import (
	"gopkg.in/gomail.v2"
)

// Notificador envia o comprovante por e-mail. Falha de envio é logada
// e nunca desfaz o registro de ponto.
type Notificador interface {
	EnviarComprovante(destinatario, assunto, corpo string) error
}

// MailerSMTP envia pelos servidores SMTP da prefeitura.
type MailerSMTP struct {
	Host          string
	Porta         int
	Usuario       string
	Senha         string
	Remetente     string
	NomeRemetente string
}

func NovoMailerSMTP(host string, porta int, usuario, senha, remetente, nomeRemetente string) *MailerSMTP {
	return &MailerSMTP{
		Host:          host,
		Porta:         porta,
		Usuario:       usuario,
		Senha:         senha,
		Remetente:     remetente,
		NomeRemetente: nomeRemetente,
	}
}

func (m *MailerSMTP) EnviarComprovante(destinatario, assunto, corpo string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.Remetente, m.NomeRemetente)
	msg.SetHeader("To", destinatario)
	msg.SetHeader("Subject", assunto)
	msg.SetBody("text/plain", corpo)

	d := gomail.NewDialer(m.Host, m.Porta, m.Usuario, m.Senha)
	return d.DialAndSend(msg)
}
