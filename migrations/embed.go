// Package migrations embeds the goose migration files so the server
// binary can migrate on startup without shipping SQL files next to it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
