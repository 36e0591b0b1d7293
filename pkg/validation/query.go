package validation

import (
	"fmt"

	"github.com/ogsdata/dashgen/pkg/models"
)

// ValidateQuery validates a query definition.
// It checks for required fields and valid values.
func ValidateQuery(query *models.Query) error {
	if query == nil {
		return fmt.Errorf("query definition cannot be nil")
	}

	if query.Name == "" {
		return fmt.Errorf("query name cannot be empty")
	}

	if query.SQL == "" {
		return fmt.Errorf("query SQL cannot be empty")
	}

	return nil
}
