package fakeapi

import (
	"encoding/json"

	"github.com/dmitrijs2005/jobly/internal/client/models"
)

// Seed credentials of the demo account.
const (
	SeedUsername = "testuser"
	SeedPassword = "password"
)

func intPtr(n int) *int { return &n }

// Seed loads a small demo dataset: one user, three companies and their jobs.
func (s *Server) Seed() error {
	if _, err := s.AddUser(models.SignupData{
		Username:  SeedUsername,
		Password:  SeedPassword,
		FirstName: "Test",
		LastName:  "User",
		Email:     "joel@joelburton.com",
	}, false); err != nil {
		return err
	}

	companies := []models.Company{
		{Handle: "anderson-arias-morrow", Name: "Anderson, Arias and Morrow", NumEmployees: intPtr(245),
			Description: "Somebody program how I. Face give away discussion view act inside."},
		{Handle: "bauer-gallagher", Name: "Bauer-Gallagher", NumEmployees: intPtr(862),
			Description: "Difficult ready trip question produce produce someone."},
		{Handle: "watson-davis", Name: "Watson-Davis", NumEmployees: intPtr(819),
			Description: "Year join loss."},
	}
	for _, c := range companies {
		s.AddCompany(c)
	}

	jobs := []models.Job{
		{Title: "Conservator, furniture", Salary: intPtr(110000), Equity: json.Number("0"), CompanyHandle: "watson-davis"},
		{Title: "Information officer", Salary: intPtr(200000), Equity: json.Number("0"), CompanyHandle: "anderson-arias-morrow"},
		{Title: "Consulting civil engineer", Salary: intPtr(60000), Equity: json.Number("0"), CompanyHandle: "bauer-gallagher"},
		{Title: "Software engineer", Salary: intPtr(150000), Equity: json.Number("0.05"), CompanyHandle: "bauer-gallagher"},
		{Title: "Programmer, multimedia", CompanyHandle: "watson-davis"},
	}
	for _, j := range jobs {
		s.AddJob(j)
	}
	return nil
}
