package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshot = `{
  "version": 3,
  "flow": {"step": "review", "identity_index": 0},
  "ui": {"selected_template": "t1", "ats_mode": false},
  "data": {
    "identity": {"first_name": "Marie", "last_name": "Dupont"},
    "skills": {"hard": ["Python"], "soft": [], "interests": []}
  }
}`

func TestValidateSnapshotAccepts(t *testing.T) {
	assert.NoError(t, ValidateSnapshot([]byte(validSnapshot)))
}

func TestValidateSnapshotRejectsMissingFields(t *testing.T) {
	err := ValidateSnapshot([]byte(`{"version": 3}`))
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Errors)
}

func TestValidateSnapshotRejectsBadStep(t *testing.T) {
	tampered := `{
	  "version": 3,
	  "flow": {"step": "teleport"},
	  "ui": {"selected_template": "t1", "ats_mode": false},
	  "data": {"identity": {}, "skills": {"hard": [], "soft": [], "interests": []}}
	}`
	err := ValidateSnapshot([]byte(tampered))
	require.Error(t, err)
}

func TestValidateSnapshotRejectsBadDate(t *testing.T) {
	tampered := `{
	  "version": 3,
	  "flow": {"step": "review"},
	  "ui": {"selected_template": "t2", "ats_mode": true},
	  "data": {
	    "identity": {},
	    "skills": {"hard": [], "soft": [], "interests": []},
	    "experiences": [{"id": "x", "start_ym": "21-1"}]
	  }
	}`
	err := ValidateSnapshot([]byte(tampered))
	require.Error(t, err)
}

func TestValidateSnapshotRejectsMalformedJSON(t *testing.T) {
	err := ValidateSnapshot([]byte(`{not json`))
	require.Error(t, err)
}
