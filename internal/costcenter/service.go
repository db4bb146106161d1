package costcenter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clubledger-dev/clubledger/internal/model"
)

// FileName is the chart file inside a ledger directory.
const FileName = "cost-centers.csv"

// Service provides in-memory lookup over the chart of cost centers.
type Service struct {
	centers []model.CostCenter
	byID    map[string]model.CostCenter
}

// NewService creates a Service from a slice of cost centers.
func NewService(centers []model.CostCenter) *Service {
	byID := make(map[string]model.CostCenter, len(centers))
	for _, c := range centers {
		byID[c.ID] = c
	}
	return &Service{centers: centers, byID: byID}
}

// Load reads cost-centers.csv from a ledger directory.
func Load(dir string) (*Service, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("opening cost centers: %w", err)
	}
	defer f.Close()

	centers, err := ReadCostCenters(f)
	if err != nil {
		return nil, fmt.Errorf("reading cost centers: %w", err)
	}
	return NewService(centers), nil
}

// All returns all cost centers.
func (s *Service) All() []model.CostCenter {
	return s.centers
}

// Get returns a cost center by ID.
func (s *Service) Get(id string) (model.CostCenter, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Exists reports whether a cost center ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByClassification returns all centers with the given usual direction.
func (s *Service) ByClassification(class model.Classification) []model.CostCenter {
	var result []model.CostCenter
	for _, c := range s.centers {
		if c.Classification == class {
			result = append(result, c)
		}
	}
	return result
}

// Save writes the chart to cost-centers.csv in a ledger directory.
func (s *Service) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return fmt.Errorf("creating cost centers file: %w", err)
	}
	defer f.Close()

	if err := WriteCostCenters(f, s.centers); err != nil {
		return fmt.Errorf("writing cost centers: %w", err)
	}
	return nil
}
