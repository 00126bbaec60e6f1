package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ErrUnrecognizedFormat is returned when the input JSON matches none of the
// accepted mod list shapes.
var ErrUnrecognizedFormat = errors.New("unrecognized input JSON format: provide manifest.json or a list of projectIDs")

type manifestFileEntry struct {
	ProjectID uint32 `mapstructure:"projectID"`
}

// LoadProjectIDs reads a mod list file and returns its project IDs in listed
// order. Three shapes are accepted, checked in this priority:
//
//  1. a CurseForge manifest.json, i.e. an object with a "files" list of
//     {"projectID": n} entries;
//  2. a list of {"projectID": n} objects;
//  3. a flat list of integer IDs.
//
// Lists must be homogeneous; a single mismatched element rejects the whole
// file.
func LoadProjectIDs(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mod list %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var parsed interface{}
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse mod list %s: %w", path, err)
	}

	switch v := parsed.(type) {
	case map[string]interface{}:
		files, ok := v["files"].([]interface{})
		if !ok {
			return nil, ErrUnrecognizedFormat
		}
		return extractProjectIDs(files)
	case []interface{}:
		if allMappings(v) {
			return extractProjectIDs(v)
		}
		if ids, ok := allIntegers(v); ok {
			return ids, nil
		}
		return nil, ErrUnrecognizedFormat
	}
	return nil, ErrUnrecognizedFormat
}

func extractProjectIDs(entries []interface{}) ([]uint32, error) {
	ids := make([]uint32, 0, len(entries))
	for i, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			return nil, ErrUnrecognizedFormat
		}
		if _, present := entry["projectID"]; !present {
			return nil, fmt.Errorf("mod list entry %d has no projectID", i)
		}
		var decoded manifestFileEntry
		if err := mapstructure.Decode(entry, &decoded); err != nil {
			return nil, fmt.Errorf("invalid projectID in mod list entry %d: %w", i, err)
		}
		ids = append(ids, decoded.ProjectID)
	}
	return ids, nil
}

func allMappings(entries []interface{}) bool {
	for _, raw := range entries {
		if _, ok := raw.(map[string]interface{}); !ok {
			return false
		}
	}
	return true
}

func allIntegers(entries []interface{}) ([]uint32, bool) {
	ids := make([]uint32, 0, len(entries))
	for _, raw := range entries {
		num, ok := raw.(json.Number)
		if !ok {
			return nil, false
		}
		id, err := num.Int64()
		if err != nil {
			return nil, false
		}
		ids = append(ids, uint32(id))
	}
	return ids, true
}
