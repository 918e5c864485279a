package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry describes one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame    int     `json:"frame"`
	AngleDeg float64 `json:"angle_deg"`
	Image    string  `json:"image"`
}

// WriteManifest writes manifest.json describing the turntable sequence.
func WriteManifest(path string, frames int) error {
	entries := make([]ManifestEntry, frames)
	for i := range entries {
		entries[i] = ManifestEntry{
			Frame:    i,
			AngleDeg: 360 * float64(i) / float64(frames),
			Image:    fmt.Sprintf("%04d.webp", i),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
