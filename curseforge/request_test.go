package curseforge

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filesListBody = `{"data": [
	{"id": 4593548, "fileName": "jei-1.20.1-forge-15.2.0.27.jar",
	 "fileDate": "2024-02-01T12:00:00.000Z", "releaseType": 1,
	 "downloadUrl": "https://edge.forgecdn.net/files/4593/548/jei-1.20.1-forge-15.2.0.27.jar",
	 "gameVersions": ["1.20.1", "Forge"]},
	{"id": 4512866, "fileName": "jei-1.20.1-forge-15.0.0.12.jar",
	 "fileDate": "2024-01-01T12:00:00.000Z", "releaseType": 2,
	 "downloadUrl": null,
	 "gameVersions": ["1.20.1", "Forge", "NeoForge"]}
]}`

func activateMockClient(t *testing.T) *CfApiClient {
	t.Helper()
	client := NewClient("test-key")
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestGetModFiles(t *testing.T) {
	client := activateMockClient(t)

	httpmock.RegisterResponder("GET", "https://api.curseforge.com/v1/mods/238222/files",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "test-key", req.Header.Get("x-api-key"))
			assert.Equal(t, "50", req.URL.Query().Get("pageSize"))
			return httpmock.NewStringResponse(200, filesListBody), nil
		})

	files, err := client.GetModFiles(238222)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "jei-1.20.1-forge-15.2.0.27.jar", files[0].FileName)
	assert.Equal(t, FileTypeRelease, files[0].ReleaseType)
	assert.Equal(t, []string{"1.20.1", "Forge"}, files[0].GameVersions)
	assert.Equal(t, "2024-02-01T12:00:00.000Z", files[0].FileDate)

	// Null downloadUrl decodes as empty.
	assert.Equal(t, "", files[1].DownloadURL)
	assert.Equal(t, FileTypeBeta, files[1].ReleaseType)
}

func TestGetModFilesNullData(t *testing.T) {
	client := activateMockClient(t)

	httpmock.RegisterResponder("GET", "https://api.curseforge.com/v1/mods/32274/files",
		httpmock.NewStringResponder(200, `{"data": null}`))

	files, err := client.GetModFiles(32274)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGetModFilesErrorStatus(t *testing.T) {
	client := activateMockClient(t)

	httpmock.RegisterResponder("GET", "https://api.curseforge.com/v1/mods/238222/files",
		httpmock.NewStringResponder(403, `{"error": "forbidden"}`))

	_, err := client.GetModFiles(238222)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid response status")
}
