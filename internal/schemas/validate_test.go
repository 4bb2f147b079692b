package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHealth_ValidDocument(t *testing.T) {
	doc := `{
		"updatedAt": "2024-06-01T10:00:00Z",
		"severity": "ok",
		"systems": {"logging": {"ok": true, "detail": ""}},
		"notes": []
	}`
	assert.NoError(t, ValidateHealth([]byte(doc)))
}

func TestValidateHealth_MissingFieldsStillValid(t *testing.T) {
	// The schema is permissive on purpose; producers may omit anything.
	assert.NoError(t, ValidateHealth([]byte(`{}`)))
}

func TestValidateHealth_WrongType(t *testing.T) {
	err := ValidateHealth([]byte(`{"notes": "not an array"}`))
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.NotEmpty(t, verr.Errors)
	assert.Equal(t, "notes", verr.Errors[0].Field)
}

func TestValidateTasks_ValidDocument(t *testing.T) {
	doc := `{
		"meta": {"version": 1},
		"tasks": [{"text": "Buy milk", "status": "open", "createdAt": "2024-01-01T00:00:00Z"}]
	}`
	assert.NoError(t, ValidateTasks([]byte(doc)))
}

func TestValidateTasks_WrongVersionType(t *testing.T) {
	err := ValidateTasks([]byte(`{"meta": {"version": "one"}, "tasks": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestValidateTasks_UnknownStatusIsValid(t *testing.T) {
	// Status coercion happens at render time; the schema does not reject it.
	doc := `{"tasks": [{"text": "x", "status": "someday"}]}`
	assert.NoError(t, ValidateTasks([]byte(doc)))
}
