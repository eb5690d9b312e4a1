package introspect

import (
	"fmt"
	"slices"

	// Database drivers used by the column queries.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver describes how to list the columns of a table on one database.
type Driver struct {
	Name      string   // driver name used on the command line.
	Aliases   []string // alternative names.
	SQLDriver string   // database/sql driver name.
	// Query selects name, type and "YES"/"NO" nullability of every column
	// of the table passed as the single argument, in declaration order.
	Query string
}

// String implements the fmt.Stringer interface.
func (d *Driver) String() string { return d.Name }

var drivers = []*Driver{
	{
		Name:      "sqlite",
		Aliases:   []string{"sqlite3"},
		SQLDriver: "sqlite",
		Query:     `SELECT name, type, CASE WHEN "notnull" = 0 THEN 'YES' ELSE 'NO' END FROM pragma_table_info(?) ORDER BY cid`,
	},
	{
		Name:      "mysql",
		Aliases:   []string{"mariadb"},
		SQLDriver: "mysql",
		Query:     `SELECT COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION`,
	},
	{
		Name:      "postgres",
		Aliases:   []string{"postgresql", "pgsql"},
		SQLDriver: "postgres",
		Query:     `SELECT column_name, data_type, is_nullable FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position`,
	},
}

// NewDriver returns the driver registered under name. It fails if the
// name is not a valid option.
func NewDriver(name string) (*Driver, error) {
	for _, d := range drivers {
		if name == d.Name || slices.Contains(d.Aliases, name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("scaffold: invalid database driver %q (want one of %v)", name, DriverNames())
}

// DriverNames returns the names of the registered drivers.
func DriverNames() []string {
	names := make([]string, len(drivers))
	for i, d := range drivers {
		names[i] = d.Name
	}
	return names
}
