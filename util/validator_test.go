package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructReportStatus(t *testing.T) {
	type payload struct {
		Status string `validate:"required,reportstatus"`
	}

	assert.NoError(t, ValidateStruct(payload{Status: "pending"}))
	assert.NoError(t, ValidateStruct(payload{Status: "resolved"}))
	assert.Error(t, ValidateStruct(payload{Status: "archived"}))
	assert.Error(t, ValidateStruct(payload{}))
}

func TestValidateStructUserRole(t *testing.T) {
	type payload struct {
		Role string `validate:"required,userrole"`
	}

	assert.NoError(t, ValidateStruct(payload{Role: "admin"}))
	assert.NoError(t, ValidateStruct(payload{Role: "viewer"}))
	assert.Error(t, ValidateStruct(payload{Role: "superadmin"}))
}
