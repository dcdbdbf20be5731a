// ABOUTME: Embeds the built-in phrase packs into the binary.
// ABOUTME: User packs from the config dir are merged on top at load time.

package catalog

import "embed"

//go:embed packs/*.yaml
var builtinPacks embed.FS
