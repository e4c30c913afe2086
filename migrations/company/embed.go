// Package company embeds the goose migrations of the company directory schema.
package company

import "embed"

//go:embed *.sql
var FS embed.FS
