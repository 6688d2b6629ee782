package utils

import "strings"

// ContainsFold reports whether slice holds item, ignoring case.
func ContainsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
