package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ogsdata/dashgen/pkg/models"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   *models.Query
		wantErr bool
	}{
		{
			name: "valid query",
			query: &models.Query{
				Name: "kpis",
				SQL:  "SELECT COUNT(*) FROM online_retail_cleaned",
			},
			wantErr: false,
		},
		{
			name:    "nil query",
			query:   nil,
			wantErr: true,
		},
		{
			name: "empty name",
			query: &models.Query{
				SQL: "SELECT 1",
			},
			wantErr: true,
		},
		{
			name: "empty SQL",
			query: &models.Query{
				Name: "kpis",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
