package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}
