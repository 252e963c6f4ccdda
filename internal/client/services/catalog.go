package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobly/internal/client/client"
	"github.com/dmitrijs2005/jobly/internal/client/models"
)

// CatalogService reads companies and jobs for the listing views.
type CatalogService interface {
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.Company, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
}

type catalogService struct {
	client client.Client
}

func NewCatalogService(c client.Client) CatalogService {
	return &catalogService{client: c}
}

func (s *catalogService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	companies, err := s.client.ListCompanies(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *catalogService) GetCompany(ctx context.Context, handle string) (*models.Company, error) {
	company, err := s.client.GetCompany(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("get company %q: %w", handle, err)
	}
	return company, nil
}

func (s *catalogService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	jobs, err := s.client.ListJobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *catalogService) GetJob(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return job, nil
}
