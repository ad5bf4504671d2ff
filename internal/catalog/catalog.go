// Package catalog holds the fixed naming conventions of a station: default
// file names and extensions, raw camera formats and filter band codes.
//
// The tables are read-only; accessors return copies.
package catalog

import "sort"

// Station configuration file naming
const (
	StationConfigName    = "dfnstation.cfg"
	StationConfigToken   = "dfnstation"
	StationConfigExt     = "cfg"
	StationConfigPattern = "*" + StationConfigToken + "*." + StationConfigExt
)

// Default image and log extensions
const (
	RawExtensionDefault = "NEF"
	FITSExtension       = "fits"
	TIFFExtension       = "tiff"
	JPEGExtension       = "jpeg"
	LogExtension        = "txt"
)

var rawExtensions = map[string]string{
	"NEF": "nikon",
	"CR2": "canon",
	"ARW": "sony",
}

var filterBands = map[string]string{
	"RED":            "R",
	"GREEN 1":        "V",
	"GREEN 2":        "V",
	"BLUE":           "B",
	"GREEN_INTERPOL": "V",
	"RAW":            "panchromatic",
	"GREEN_2X2":      "G",
	"RGB_2X2":        "panchromatic",
}

// RawCameraMaker returns the camera maker for a raw image extension.
func RawCameraMaker(ext string) (string, bool) {
	maker, ok := rawExtensions[ext]
	return maker, ok
}

// RawExtensions returns the known raw extensions, sorted.
func RawExtensions() []string {
	return sortedKeys(rawExtensions)
}

// FilterBand returns the photometric band code for a processing channel name.
func FilterBand(name string) (string, bool) {
	band, ok := filterBands[name]
	return band, ok
}

// FilterBandNames returns the known processing channel names, sorted.
func FilterBandNames() []string {
	return sortedKeys(filterBands)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
