package costcenter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/clubledger-dev/clubledger/internal/model"
)

const (
	numFields = 4
	colID     = 0
	colName   = 1
	colClass  = 2
	colDesc   = 3
)

// ReadCostCenters reads cost-centers.csv.
func ReadCostCenters(r io.Reader) ([]model.CostCenter, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading cost centers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var centers []model.CostCenter
	for i, rec := range records[1:] {
		c, err := UnmarshalCostCenter(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		centers = append(centers, c)
	}
	return centers, nil
}

// WriteCostCenters writes cost-centers.csv.
func WriteCostCenters(w io.Writer, centers []model.CostCenter) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "classification", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range centers {
		if err := cw.Write(MarshalCostCenter(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCostCenter converts a CostCenter to a CSV row.
func MarshalCostCenter(c model.CostCenter) []string {
	return []string{c.ID, c.Name, string(c.Classification), c.Description}
}

// UnmarshalCostCenter converts a CSV row to a CostCenter.
func UnmarshalCostCenter(record []string) (model.CostCenter, error) {
	if len(record) != numFields {
		return model.CostCenter{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.CostCenter{
		ID:             record[colID],
		Name:           record[colName],
		Classification: model.Classification(record[colClass]),
		Description:    record[colDesc],
	}, nil
}
