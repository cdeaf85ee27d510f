package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. The
// golang-migrate library reads these via the iofs driver when provisioning a
// tenant schema; the migrate instance is scoped to the target schema through
// search_path, so the same files are applied once per organization.
//
//go:embed *.sql
var FS embed.FS

const Version = 2
