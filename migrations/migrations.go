// Package migrations embeds the SQL schema for every supported storage driver.
// Each driver has its own directory named after it.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
