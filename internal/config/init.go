package config

import (
	"fmt"
	"os"
)

const starterConfig = `# nuxtdoc configuration
api_dump: api.json
content_directory: content

# Merged into every page's frontmatter.
default_frontmatter:
  navigation: true

pages:
  - title: Overview
    name: index
    source: README.md
  - title: API Reference
    name: reference
    contents:
      - "*"
`

// Init writes a starter configuration file. An existing file is only
// overwritten when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}
