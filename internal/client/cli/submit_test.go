package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/client/forms"
	"github.com/iudanet/formsync/pkg/api"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", pairs: nil, want: map[string]string{}},
		{name: "pairs", pairs: []string{"name=Ann", " email =a@b.c"}, want: map[string]string{"name": "Ann", "email": "a@b.c"}},
		{name: "value with equals", pairs: []string{"note=a=b"}, want: map[string]string{"note": "a=b"}},
		{name: "empty value", pairs: []string{"note="}, want: map[string]string{"note": ""}},
		{name: "missing equals", pairs: []string{"name"}, wantErr: true},
		{name: "empty key", pairs: []string{"=x"}, wantErr: true},
		{name: "duplicate", pairs: []string{"a=1", "a=2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValues(tt.pairs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunSubmit(t *testing.T) {
	io, out := newIO()
	svc := &forms.ServiceMock{
		SubmitFunc: func(_ context.Context, formID string, values map[string]string, meta forms.SubmissionMeta) (*api.AppendResult, error) {
			assert.Equal(t, "signup", formID)
			assert.Equal(t, map[string]string{"name": "Ann"}, values)
			assert.Equal(t, "10.0.0.1", meta.IP)
			assert.True(t, meta.SubmittedAt.IsZero())
			return &api.AppendResult{Appended: 1, RowCount: 7}, nil
		},
	}

	err := newTestCli(io, svc, nil).runSubmit(context.Background(), "signup", submitOptions{
		values: []string{"name=Ann"},
		ip:     "10.0.0.1",
	})
	require.NoError(t, err)
	assert.Equal(t, "✓ Response recorded, store has 7 rows\n", out.String())
}

func TestRunSubmitBadValue(t *testing.T) {
	io, _ := newIO()
	svc := &forms.ServiceMock{}

	err := newTestCli(io, svc, nil).runSubmit(context.Background(), "signup", submitOptions{values: []string{"oops"}})
	require.Error(t, err)
	assert.Empty(t, svc.SubmitCalls())
}
