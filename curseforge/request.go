package curseforge

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/modfetch/modfetch/core"
)

const cfApiServer = "api.curseforge.com"

// filesPageSize bounds the file listing request; large enough to cover the
// recent versions of a project.
const filesPageSize = 50

// listTimeout applies to metadata requests only; binary downloads get a much
// longer budget (see cmdshared).
const listTimeout = 30 * time.Second

type CfApiClient struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a CurseForge v1 API client authenticating with the given
// key.
func NewClient(apiKey string) *CfApiClient {
	return &CfApiClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: listTimeout},
	}
}

func (c *CfApiClient) makeGet(endpoint string) (*http.Response, error) {
	req, err := http.NewRequest("GET", "https://"+cfApiServer+endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", core.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("invalid response status: %v", resp.Status)
	}
	return resp, nil
}

type FileType uint8

const (
	FileTypeRelease FileType = iota + 1
	FileTypeBeta
	FileTypeAlpha
)

// ModFileInfo is a subset of the deserialised JSON response from the Curse API
// for mod files.
//
// GameVersions mixes game version strings ("1.20.1") and mod loader tags
// ("Forge") in one set; selection tests membership in that set as-is. FileDate
// is deliberately kept as the raw API string so that ordering stays a plain
// string comparison.
type ModFileInfo struct {
	ID          uint32   `json:"id"`
	FileName    string   `json:"fileName"`
	FileDate    string   `json:"fileDate"`
	ReleaseType FileType `json:"releaseType"`
	// According to the CurseForge API T&Cs, this must not be saved or cached
	DownloadURL  string   `json:"downloadUrl"`
	GameVersions []string `json:"gameVersions"`
}

// UnmarshalJSON defaults ReleaseType to alpha when the key is absent, which
// keeps untagged files out of every selection path.
func (i *ModFileInfo) UnmarshalJSON(data []byte) error {
	type Alias ModFileInfo
	aux := (*Alias)(i)
	aux.ReleaseType = FileTypeAlpha
	return json.Unmarshal(data, aux)
}

// GetModFiles lists the downloadable files of a project, most recent page
// only. A missing or null data field decodes as an empty list.
func (c *CfApiClient) GetModFiles(projectID uint32) ([]ModFileInfo, error) {
	var infoRes struct {
		Data []ModFileInfo `json:"data"`
	}

	idStr := strconv.FormatUint(uint64(projectID), 10)
	resp, err := c.makeGet("/v1/mods/" + idStr + "/files?pageSize=" + strconv.Itoa(filesPageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to request file list for project ID %d: %w", projectID, err)
	}

	err = json.NewDecoder(resp.Body).Decode(&infoRes)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse file list for project ID %d: %w", projectID, err)
	}

	return infoRes.Data, nil
}
