// ABOUTME: Grapheme-safe truncation of command output previews.
// ABOUTME: Cuts on cluster boundaries so combining marks never split.

package layers

import "github.com/rivo/uniseg"

// previewLimit bounds the outcome message shown (and spoken) per turn.
const previewLimit = 2000

// TruncatePreview shortens s to at most max grapheme clusters, appending
// an ellipsis when anything was cut.
func TruncatePreview(s string, max int) string {
	if max <= 0 || uniseg.GraphemeClusterCount(s) <= max {
		return s
	}

	g := uniseg.NewGraphemes(s)
	count := 0
	end := 0
	for g.Next() {
		count++
		if count > max {
			break
		}
		_, end = g.Positions()
	}
	return s[:end] + "…"
}
