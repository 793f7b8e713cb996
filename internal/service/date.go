package service

import "strings"

// NormalizeCreationDate converts a UI date token (yyyy-MM-ddTHH:mm) into the
// stored display format (dd-MM-yyyy HH:mm). Tokens without a T are returned
// as-is. Numeric ranges are not checked: malformed input gives malformed output.
func NormalizeCreationDate(token string) string {
	datePart, timePart, found := strings.Cut(token, "T")
	if !found {
		return token
	}

	parts := strings.Split(datePart, "-")
	if len(parts) < 3 {
		return datePart + " " + timePart
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0] + " " + timePart
}
