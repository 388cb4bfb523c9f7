package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidReportStatus(t *testing.T) {
	for _, status := range ValidReportStatuses {
		assert.True(t, IsValidReportStatus(status), status)
	}

	assert.False(t, IsValidReportStatus("archived"))
	assert.False(t, IsValidReportStatus("Pending"))
	assert.False(t, IsValidReportStatus(""))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range ValidRoles {
		assert.True(t, IsValidRole(role), role)
	}

	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole(""))
}
