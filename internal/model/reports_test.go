package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReportRequestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		req  CreateReportRequest
		want string
	}{
		{
			name: "anonymous hides the supplied name",
			req:  CreateReportRequest{IsAnonymous: true, AuthorName: "Jane Wanjiku"},
			want: AnonymousAuthorName,
		},
		{
			name: "anonymous without a name",
			req:  CreateReportRequest{IsAnonymous: true},
			want: AnonymousAuthorName,
		},
		{
			name: "no name falls back to guest",
			req:  CreateReportRequest{},
			want: GuestAuthorName,
		},
		{
			name: "named reporter keeps their name",
			req:  CreateReportRequest{AuthorName: "Jane Wanjiku"},
			want: "Jane Wanjiku",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.DisplayName())
		})
	}
}
