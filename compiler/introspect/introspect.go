// Package introspect reads the columns of a live database table and
// converts them into a field schema string.
package introspect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/scaffold/schema/field"
)

// ErrTableNotFound is returned when a table has no columns or does not exist.
var ErrTableNotFound = errors.New("scaffold: table not found")

// Column describes one table column.
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// Inspector lists table columns over a database connection.
type Inspector struct {
	db     *sql.DB
	driver *Driver
}

// New returns an Inspector using the given connection and driver.
func New(db *sql.DB, d *Driver) *Inspector {
	return &Inspector{db: db, driver: d}
}

// Open opens a connection for the named driver.
func Open(driver, dsn string) (*Inspector, error) {
	d, err := NewDriver(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.SQLDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("scaffold: open %s: %w", d.Name, err)
	}
	return New(db, d), nil
}

// Close closes the underlying connection.
func (i *Inspector) Close() error {
	return i.db.Close()
}

// Columns returns the columns of table in declaration order.
func (i *Inspector) Columns(ctx context.Context, table string) ([]Column, error) {
	rows, err := i.db.QueryContext(ctx, i.driver.Query, table)
	if err != nil {
		return nil, fmt.Errorf("scaffold: query columns of %q: %w", table, err)
	}
	defer rows.Close()
	var columns []Column
	for rows.Next() {
		var (
			c        Column
			nullable string
		)
		if err := rows.Scan(&c.Name, &c.Type, &nullable); err != nil {
			return nil, fmt.Errorf("scaffold: scan column of %q: %w", table, err)
		}
		c.Nullable = strings.EqualFold(nullable, "YES")
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scaffold: read columns of %q: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, table)
	}
	return columns, nil
}

// Fields returns the field descriptors of table, see Descriptors.
func (i *Inspector) Fields(ctx context.Context, table string) ([]*field.Descriptor, error) {
	columns, err := i.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	return Descriptors(columns), nil
}

// Schema returns the schema string describing table.
func (i *Inspector) Schema(ctx context.Context, table string) (string, error) {
	fields, err := i.Fields(ctx, table)
	if err != nil {
		return "", err
	}
	return field.Format(fields), nil
}

// skipped columns are managed by the model itself.
var skipped = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"deleted_at": true,
}

// Descriptors converts columns into field descriptors. Key and audit
// columns are skipped, "_id" columns become foreign ids unless they hold
// uuids and nullable columns carry the nullable modifier.
func Descriptors(columns []Column) []*field.Descriptor {
	fields := make([]*field.Descriptor, 0, len(columns))
	for _, c := range columns {
		if skipped[c.Name] {
			continue
		}
		d := &field.Descriptor{Name: c.Name, Type: TypeOf(c.Type)}
		if strings.HasSuffix(c.Name, "_id") && d.Type != field.TypeUUID {
			d.Type = field.TypeForeignID
		}
		if c.Nullable {
			d.Modifiers = append(d.Modifiers, field.ModNullable)
		}
		fields = append(fields, d)
	}
	return fields
}

// sqlTypes maps normalized SQL type names to field types.
var sqlTypes = map[string]string{
	"varchar":                     field.TypeString,
	"character varying":           field.TypeString,
	"nvarchar":                    field.TypeString,
	"char":                        field.TypeChar,
	"character":                   field.TypeChar,
	"bpchar":                      field.TypeChar,
	"text":                        field.TypeText,
	"tinytext":                    field.TypeText,
	"clob":                        field.TypeText,
	"mediumtext":                  field.TypeMediumText,
	"longtext":                    field.TypeLongText,
	"int":                         field.TypeInteger,
	"integer":                     field.TypeInteger,
	"int4":                        field.TypeInteger,
	"serial":                      field.TypeInteger,
	"mediumint":                   field.TypeMediumInteger,
	"smallint":                    field.TypeSmallInteger,
	"int2":                        field.TypeSmallInteger,
	"tinyint":                     field.TypeTinyInteger,
	"bigint":                      field.TypeBigInteger,
	"int8":                        field.TypeBigInteger,
	"bigserial":                   field.TypeBigInteger,
	"decimal":                     field.TypeDecimal,
	"numeric":                     field.TypeDecimal,
	"float":                       field.TypeFloat,
	"real":                        field.TypeFloat,
	"float4":                      field.TypeFloat,
	"double":                      field.TypeDouble,
	"double precision":            field.TypeDouble,
	"float8":                      field.TypeDouble,
	"boolean":                     field.TypeBoolean,
	"bool":                        field.TypeBoolean,
	"date":                        field.TypeDate,
	"datetime":                    field.TypeDateTime,
	"timestamp":                   field.TypeTimestamp,
	"timestamp without time zone": field.TypeTimestamp,
	"timestamp with time zone":    field.TypeTimestamp,
	"timestamptz":                 field.TypeTimestamp,
	"time":                        field.TypeTime,
	"time without time zone":      field.TypeTime,
	"year":                        field.TypeYear,
	"json":                        field.TypeJSON,
	"jsonb":                       field.TypeJSONB,
	"uuid":                        field.TypeUUID,
}

// TypeOf maps an SQL column type to a field type. Lengths, precision and
// the unsigned attribute are ignored; tinyint(1) is a boolean. Unknown
// types map to string.
func TypeOf(sqlType string) string {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	if t == "tinyint(1)" {
		return field.TypeBoolean
	}
	if i := strings.IndexByte(t, '('); i >= 0 {
		rest := ""
		if j := strings.IndexByte(t[i:], ')'); j >= 0 {
			rest = t[i+j+1:]
		}
		t = strings.TrimSpace(t[:i] + rest)
	}
	unsigned := strings.HasSuffix(t, " unsigned")
	t = strings.TrimSuffix(t, " unsigned")
	typ, ok := sqlTypes[t]
	if !ok {
		return field.TypeString
	}
	switch {
	case unsigned && typ == field.TypeInteger:
		return field.TypeUnsignedInteger
	case unsigned && typ == field.TypeBigInteger:
		return field.TypeUnsignedBigInteger
	}
	return typ
}
