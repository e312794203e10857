// Package sql holds the embedded schema migrations and statements used by
// the claim store.
package sql

import (
	"embed"
)

//go:embed migrations
var Migrations embed.FS

//go:embed queries/insert_claim.sql
var InsertClaim string

//go:embed queries/top_providers.sql
var TopProviders string
