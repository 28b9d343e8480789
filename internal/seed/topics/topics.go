// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package topics embeds the bundled seed payloads: one YAML manifest per
// topic plus the Markdown bodies it references.
package topics

import "embed"

//go:embed *.yaml *.md
var FS embed.FS
