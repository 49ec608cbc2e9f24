// Package document loads configuration files into a loosely-typed JSON value
// tree. Nothing about the expected schema is assumed beyond the location of
// the table collection; callers probe entries with Lookup and Has.
package document

// TablesKey is the top-level key holding the table collection
const TablesKey = "tables"

// Document is a parsed configuration file
type Document struct {
	Source string // path the document was loaded from (empty for raw bytes)
	Root   Value
}

// Tables returns the table collection in document order.
// A missing "tables" key is treated as an empty collection.
func (d *Document) Tables() ([]Value, error) {
	if d.Root.Kind() != KindObject {
		return nil, &ShapeError{Expected: KindObject, Got: d.Root.Kind()}
	}

	tables, ok := d.Root.Lookup(TablesKey)
	if !ok {
		return []Value{}, nil
	}
	if tables.Kind() != KindArray {
		return nil, &ShapeError{Path: TablesKey, Expected: KindArray, Got: tables.Kind()}
	}

	return tables.Elements(), nil
}
