package curseforge

import (
	"sort"

	"github.com/unascribed/FlexVer/go/flexver"
	"golang.org/x/exp/slices"
)

// PickLatestFile chooses the newest file eligible for the given game version
// and loader tag. Only full releases are considered at first; when none match
// and allowBeta is set, beta files become eligible as a fallback. Alpha files
// never qualify. An empty loader skips the loader membership test entirely.
//
// Files are ordered by their fileDate string, newest first. The API reports
// ISO 8601 dates, so plain string comparison is chronological.
func PickLatestFile(files []ModFileInfo, mcVersion string, loader string, allowBeta bool) (ModFileInfo, bool) {
	candidates := filterEligible(files, mcVersion, loader, false)
	if len(candidates) == 0 && allowBeta {
		candidates = filterEligible(files, mcVersion, loader, true)
	}
	if len(candidates) == 0 {
		return ModFileInfo{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FileDate > candidates[j].FileDate
	})
	return candidates[0], true
}

func filterEligible(files []ModFileInfo, mcVersion string, loader string, allowPrerelease bool) []ModFileInfo {
	var out []ModFileInfo
	for _, f := range files {
		if !slices.Contains(f.GameVersions, mcVersion) {
			continue
		}
		if loader != "" && !slices.Contains(f.GameVersions, loader) {
			continue
		}
		if f.ReleaseType == FileTypeRelease || (allowPrerelease && f.ReleaseType == FileTypeBeta) {
			out = append(out, f)
		}
	}
	return out
}

// KnownGameVersions collects the distinct gameVersions entries across all
// files, sorted oldest to newest. Loader tags share the set with version
// strings and are reported alongside them.
func KnownGameVersions(files []ModFileInfo) []string {
	var out []string
	for _, f := range files {
		for _, v := range f.GameVersions {
			if !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	flexver.VersionSlice(out).Sort()
	return out
}
