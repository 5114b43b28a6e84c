package apimachinery

import "strings"

// joinURL joins a base URL with a path suffix, tolerating duplicate or
// missing slashes on either side of the seam.
func joinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
