// SPDX-License-Identifier: Unlicense OR MIT

package bind

import "strings"

// ExtensionSupported reports whether name appears as a whole token in the
// space separated extension list. Prefixes and substrings of a longer
// extension name do not match.
func ExtensionSupported(list, name string) bool {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return false
	}
	for _, ext := range strings.Fields(list) {
		if ext == name {
			return true
		}
	}
	return false
}
