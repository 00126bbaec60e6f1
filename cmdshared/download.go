package cmdshared

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/modfetch/modfetch/core"
)

// DownloadTimeout bounds a single binary download. It is far longer than the
// metadata timeout since mod jars can be tens of megabytes.
const DownloadTimeout = 180 * time.Second

// DownloadFile streams the file at url into destPath, writing the response
// body verbatim. A progress bar is shown when the server reports a content
// length. The destination is created (or truncated) unconditionally; collision
// handling is the caller's problem.
func DownloadFile(client *http.Client, url string, destPath string) error {
	encoded, err := core.ReencodeURL(url)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("GET", encoded, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", core.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("failed to download %s: invalid response status %v", url, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer out.Close()

	if resp.ContentLength > 0 {
		progress := mpb.New(mpb.WithWidth(64))
		bar := progress.AddBar(resp.ContentLength,
			mpb.PrependDecorators(decor.Name(filepath.Base(destPath))),
			mpb.AppendDecorators(decor.CountersKibiByte("% .1f / % .1f")),
		)
		reader := bar.ProxyReader(resp.Body)
		_, err = io.Copy(out, reader)
		if err != nil {
			bar.Abort(true)
		} else {
			bar.SetTotal(resp.ContentLength, true)
		}
		progress.Wait()
	} else {
		_, err = io.Copy(out, resp.Body)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return nil
}
