// Package globs holds the file patterns shared by the dialect builders and a
// matcher that understands the extglob forms those patterns use.
package globs

// Ignores lists the conventional build, lock and cache paths excluded from
// linting. A trailing slash marks a directory.
var Ignores = []string{
	".git/",
	"**/node_modules/",
	"**/dist/",
	"**/build/",
	"**/package-lock.json",
	"**/yarn.lock",
	"**/pnpm-lock.yaml",
	"**/bun.lockb",
	"**/output/",
	"**/.output/",
	"**/coverage/",
	"**/temp/",
	"**/.temp/",
	"**/tmp/",
	"**/.tmp/",
	"**/.history/",
	"**/.changeset/",
	"**/.idea/",
	"**/.cache/",
	"**/CHANGELOG*.md",
	"**/*.min.*",
	"**/LICENSE*",
}

const (
	YAML        = "**/*.y?(a)ml"
	JSON        = "**/*.json?(c)"
	TOML        = "**/*.toml"
	PackageJSON = "**/package.json"
	TSConfig    = "**/tsconfig.json"
	TSAnyConfig = "**/tsconfig.*.json"
)

// IgnoreList returns a fresh copy of Ignores
func IgnoreList() []string {
	out := make([]string, len(Ignores))
	copy(out, Ignores)
	return out
}
