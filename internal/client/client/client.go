package client

import (
	"context"

	"github.com/dmitrijs2005/jobly/internal/client/models"
)

// Client is the Jobly backend API as seen by the session and view layers.
type Client interface {
	// SetToken replaces the credential sent with every request; "" means anonymous.
	SetToken(token string)
	Token() string

	Request(ctx context.Context, method, endpoint string, payload any, out any) error

	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, data models.SignupData) (string, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, username string, patch models.ProfilePatch) (*models.User, error)
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.Company, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
	ApplyToJob(ctx context.Context, username string, jobID int) (int, error)
}
