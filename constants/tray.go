package constants

import "strings"

// TrayType is the caller-selected tray for a transfer submission.
type TrayType string

const (
	TrayStandard TrayType = "Standard"
	TrayHalfSize TrayType = "HalfSize"
	TrayEuro     TrayType = "Euro"
	TrayESD      TrayType = "ESD"
)

var allTrayTypes = []TrayType{
	TrayStandard,
	TrayHalfSize,
	TrayEuro,
	TrayESD,
}

func TrayTypesAsStrings() []string {
	result := make([]string, len(allTrayTypes))
	for i, t := range allTrayTypes {
		result[i] = string(t)
	}
	return result
}

// IsTrayType reports whether input names a known tray type (case-insensitive).
func IsTrayType(input string) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, t := range allTrayTypes {
		if normalized == strings.ToLower(string(t)) {
			return true
		}
	}
	return false
}
