package services

import "regexp"

// Deliberately permissive: one '@' with non-empty text either side and at
// least one '.' somewhere after it. Tightening this to a full RFC grammar
// would reject addresses the API has always accepted.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type EmailService struct{}

func NewEmailService() *EmailService {
	return &EmailService{}
}

func (s *EmailService) IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
