package inventory

import "regexp"

var nonAlphaNum = regexp.MustCompile(`[^A-Za-z0-9]`)

// Sanitize replaces every character outside [A-Za-z0-9] with an underscore,
// making a string safe to use as an Ansible group name. It is applied to
// group names and the fragments they are built from, never to host names or
// to metadata values stored in hostvars.
func Sanitize(s string) string {
	return nonAlphaNum.ReplaceAllString(s, "_")
}
