package data

import (
	_ "embed"
	"strings"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string

// WaiverTerms is the Markdown source of the waiver participants agree to
//
//go:embed waiver_terms.md
var WaiverTerms string

// ExpandInitSQL fills the {{NAME}} placeholders of an init script
func ExpandInitSQL(sql string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(sql)
}
