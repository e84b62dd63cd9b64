package mail

type FollowUpEmailData struct {
	IMEI            string
	RegistrationURL string
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}
