// Package sqldb implements the core and auth database interfaces on database/sql.
// The statements use ? placeholders and work with sqlite3 and mysql alike.
package sqldb

import (
	"database/sql"
)

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(err)
	}
	return stmt
}
