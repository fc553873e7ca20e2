package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSchema(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Nintendo"}`},
		{name: "empty body", body: ``, wantErr: "body is required"},
		{name: "whitespace body", body: "  \n", wantErr: "body is required"},
		{name: "not json", body: `name=Nintendo`, wantErr: "body must be valid JSON"},
		{name: "array", body: `["Nintendo"]`, wantErr: "body must be a JSON object"},
		{name: "empty object", body: `{}`, wantErr: "name is required"},
		{name: "unknown key", body: `{"lorem":"ipsum"}`, wantErr: "lorem is not allowed"},
		{name: "number name", body: `{"name":42}`, wantErr: "name must be a string"},
		{name: "null name", body: `{"name":null}`, wantErr: "name must be a string"},
		{name: "empty name", body: `{"name":""}`, wantErr: "name must not be empty"},
		{name: "duplicated name", body: `{"name":"Nintendo","name":5}`, wantErr: "name is duplicated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ConsoleSchema.Validate([]byte(tt.body))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Nintendo", doc.Get("name").String())
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGameSchema(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"title":"Zelda","consoleId":1}`},
		{name: "missing console", body: `{"title":"Zelda"}`, wantErr: "consoleId is required"},
		{name: "string console", body: `{"title":"Zelda","consoleId":"1"}`, wantErr: "consoleId must be a number"},
		{name: "fractional console", body: `{"title":"Zelda","consoleId":1.5}`, wantErr: "consoleId must be a positive integer"},
		{name: "zero console", body: `{"title":"Zelda","consoleId":0}`, wantErr: "consoleId must be a positive integer"},
		{name: "negative console", body: `{"title":"Zelda","consoleId":-3}`, wantErr: "consoleId must be a positive integer"},
		{name: "missing title", body: `{"consoleId":1}`, wantErr: "title is required"},
		{name: "infinite console", body: `{"title":"Zelda","consoleId":1e400}`, wantErr: "consoleId must be a positive integer"},
		{name: "duplicated console", body: `{"title":"Zelda","consoleId":1,"consoleId":"x"}`, wantErr: "consoleId is duplicated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := GameSchema.Validate([]byte(tt.body))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Zelda", doc.Get("title").String())
				assert.Equal(t, uint64(1), doc.Get("consoleId").Uint())
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	_, err := GameSchema.Validate([]byte(`{"extra":true}`))
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "game", verr.Schema)
	assert.Equal(t, []Violation{
		{Field: "extra", Message: "is not allowed"},
		{Field: "title", Message: "is required"},
		{Field: "consoleId", Message: "is required"},
	}, verr.Violations)
}

func TestGameSchema_LargeConsoleIDHasValidShape(t *testing.T) {
	doc, err := GameSchema.Validate([]byte(`{"title":"Zelda","consoleId":5000000000}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(5000000000), doc.Get("consoleId").Uint())
}
