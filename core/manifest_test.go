package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modlist.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProjectIDs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []uint32
		wantErr bool
	}{
		{
			name:    "manifest shape",
			content: `{"files": [{"projectID": 238222, "fileID": 4593548}, {"projectID": 32274}], "manifestType": "minecraftModpack"}`,
			want:    []uint32{238222, 32274},
		},
		{
			name:    "object list",
			content: `[{"projectID": 238222}, {"projectID": 32274}]`,
			want:    []uint32{238222, 32274},
		},
		{
			name:    "flat integer list",
			content: `[238222, 32274, 248787]`,
			want:    []uint32{238222, 32274, 248787},
		},
		{
			name:    "empty list",
			content: `[]`,
			want:    []uint32{},
		},
		{
			name:    "mixed list rejected",
			content: `[238222, {"projectID": 32274}]`,
			wantErr: true,
		},
		{
			name:    "object without files key",
			content: `{"minecraft": {"version": "1.20.1"}}`,
			wantErr: true,
		},
		{
			name:    "list of strings rejected",
			content: `["238222", "32274"]`,
			wantErr: true,
		},
		{
			name:    "fractional numbers rejected",
			content: `[238222.5]`,
			wantErr: true,
		},
		{
			name:    "entry without projectID rejected",
			content: `[{"fileID": 4593548}]`,
			wantErr: true,
		},
		{
			name:    "bare scalar rejected",
			content: `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadProjectIDs(writeModList(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadProjectIDsMissingFile(t *testing.T) {
	_, err := LoadProjectIDs(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadProjectIDsInvalidJSON(t *testing.T) {
	_, err := LoadProjectIDs(writeModList(t, `{"files": [`))
	assert.Error(t, err)
}
