package recommendations

import "errors"

// Service builds per-user views over shared collaborators.
type Service struct {
	Repo      Repo
	Generator *Generator
	Enricher  *Enricher
}

func NewService(repo Repo, gen *Generator, enr *Enricher) *Service {
	return &Service{Repo: repo, Generator: gen, Enricher: enr}
}

// View returns a fresh idle view for userID.
func (s *Service) View(userID string) (*View, error) {
	if s == nil || s.Repo == nil || s.Generator == nil || s.Enricher == nil {
		return nil, errors.New("recommendations service not configured")
	}
	return NewView(userID, s.Repo, s.Generator, s.Enricher), nil
}
