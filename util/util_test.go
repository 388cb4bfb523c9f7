package util

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/mkamau2/jiseti/util/values"
	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain text", "hello", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"padded text", "  hi  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NotBlank(tt.value))
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "jane@example.com", true},
		{"subdomain", "jane@mail.example.co.ke", true},
		{"plus tag", "jane+reports@example.com", true},
		{"missing at", "jane.example.com", false},
		{"missing domain", "jane@", false},
		{"missing tld", "jane@example", false},
		{"empty", "", false},
		{"spaces", "jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.value))
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantSkip  int
	}{
		{"defaults", "", 10, 0},
		{"both set", "limit=25&skip=50", 25, 50},
		{"limit only", "limit=5", 5, 0},
		{"zero limit kept", "limit=0", 0, 0},
		{"negative ignored", "limit=-3&skip=-1", 10, 0},
		{"garbage ignored", "limit=abc&skip=xyz", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			limit, skip := ParsePagination(query, 10, 0)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.NotFound, http.StatusNotFound},
		{values.Conflict, http.StatusConflict},
		{values.NotImplemented, http.StatusNotImplemented},
		{values.Error, http.StatusInternalServerError},
		{values.SystemErr, http.StatusInternalServerError},
		{values.NotAuthorised, http.StatusUnauthorized},
		{"unknown-status", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.status))
		})
	}
}
