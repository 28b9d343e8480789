// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"fmt"
	"io"
)

// WriteSummary prints a human-readable report of res, one line per item.
func WriteSummary(w io.Writer, res *Result) {
	if res.Category.ID == "" {
		fmt.Fprintf(w, "Category %q: not resolved\n", res.Category.Name)
	} else if res.Category.Created {
		fmt.Fprintf(w, "Created category %q with ID: %s\n", res.Category.Name, res.Category.ID)
	} else {
		fmt.Fprintf(w, "Category %q already exists with ID: %s\n", res.Category.Name, res.Category.ID)
	}

	for _, item := range res.Content {
		switch item.State {
		case ItemCreated:
			fmt.Fprintf(w, "  created   %s\n", item.Title)
		case ItemSkipped:
			fmt.Fprintf(w, "  skipped   %s (already exists)\n", item.Title)
		case ItemFailed:
			fmt.Fprintf(w, "  FAILED    %s\n", item.Title)
		default:
			fmt.Fprintf(w, "  not run   %s\n", item.Title)
		}
	}

	counts := res.Counts()
	fmt.Fprintf(w, "Status: %s (%d created, %d skipped)\n", res.Status, counts[ItemCreated], counts[ItemSkipped])
}
