package mail

type PositiveReplyData struct {
	BusinessName string
	LeadEmail    string
	Snippet      string
}

type CampaignReportData struct {
	SentCount int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// Operator recebe os alertas e relatórios
	Operator string
}
