package catalog

import (
	"strings"
	"testing"

	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	types := Default()

	require.NotEmpty(t, types)
	assert.Equal(t, "Chain", types[0].Name)
	assert.Equal(t, 3000.0, types[0].DefaultReplacementDistance)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    int
		wantErr error
	}{
		{
			name: "valid",
			doc: `component_types:
  - name: " Chain "
    default_replacement_distance: 3000
  - name: Cleats
    default_replacement_distance: 8000
`,
			want: 2,
		},
		{name: "empty document", doc: "", want: 0},
		{
			name: "missing name",
			doc: `component_types:
  - default_replacement_distance: 3000
`,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "non-positive distance",
			doc: `component_types:
  - name: Chain
    default_replacement_distance: 0
`,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "duplicate names",
			doc: `component_types:
  - name: Chain
    default_replacement_distance: 3000
  - name: chain
    default_replacement_distance: 2500
`,
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestParseTrimsNames(t *testing.T) {
	got, err := Parse(strings.NewReader("component_types:\n  - name: \"  Tires \"\n    default_replacement_distance: 4000\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tires", got[0].Name)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("component_types:\n  - name: Chain\n    lifespan: 3000\n"))
	assert.Error(t, err)
}
