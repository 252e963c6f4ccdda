package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Company struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	NumEmployees *int   `json:"numEmployees,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Jobs         []Job  `json:"jobs,omitempty"`
}

func (c Company) String() string {
	s := fmt.Sprintf("%s (%s)", c.Name, c.Handle)
	if c.NumEmployees != nil {
		s += fmt.Sprintf(", %d employees", *c.NumEmployees)
	}
	return s
}

type Job struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Salary        *int        `json:"salary,omitempty"`
	Equity        json.Number `json:"equity,omitempty"`
	CompanyHandle string      `json:"companyHandle,omitempty"`
	CompanyName   string      `json:"companyName,omitempty"`
}

// HasEquity is true when equity is a positive number. The backend sends
// NUMERIC columns as strings, e.g. "0.05".
func (j Job) HasEquity() bool {
	f, err := j.Equity.Float64()
	return err == nil && f > 0
}

func (j Job) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", j.ID, j.Title)
	if j.CompanyName != "" {
		fmt.Fprintf(&b, " @ %s", j.CompanyName)
	} else if j.CompanyHandle != "" {
		fmt.Fprintf(&b, " @ %s", j.CompanyHandle)
	}
	if j.Salary != nil {
		fmt.Fprintf(&b, ", salary %d", *j.Salary)
	}
	if j.HasEquity() {
		fmt.Fprintf(&b, ", equity %s", j.Equity)
	}
	return b.String()
}

// CompanyFilter narrows GET /companies. Zero fields are not sent.
type CompanyFilter struct {
	Name string `json:"name,omitempty"`
}

// JobFilter narrows GET /jobs. Zero fields are not sent.
type JobFilter struct {
	Title     string `json:"title,omitempty"`
	MinSalary int    `json:"minSalary,omitempty"`
	HasEquity bool   `json:"hasEquity,omitempty"`
}
