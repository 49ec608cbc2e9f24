// Package checker verifies that every table entry of a configuration
// document declares the structurally required array properties.
//
// Only presence is checked. A property whose value is not actually an
// array is not flagged.
package checker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/configcheck/internal/document"
)

// UnknownLabel substitutes for an absent table name or id
const UnknownLabel = "Unknown"

// DefaultCollection is the collection name used by CheckArrays
const DefaultCollection = document.TablesKey

// RequiredArrayProperties lists the keys every table entry must declare,
// in the order they are checked and reported
var RequiredArrayProperties = []string{"columns", "indexes", "$permissions"}

// Warning records one required property missing from one table entry
type Warning struct {
	Collection string // collection the entry belongs to
	Position   int    // 0-based index of the entry in its collection
	TableName  string
	TableID    string
	Property   string
}

// String renders the warning in its console form
func (w Warning) String() string {
	return fmt.Sprintf("Warning: Table '%s' (%s) is missing '%s'.", w.TableName, w.TableID, w.Property)
}

// Checker runs structure checks and reports their lifecycle to observers
type Checker struct {
	observers []Observer
}

// New creates a Checker with no observers
func New() *Checker {
	return &Checker{
		observers: make([]Observer, 0),
	}
}

// AddObserver registers an observer to receive check events
func (c *Checker) AddObserver(observer Observer) {
	c.observers = append(c.observers, observer)
}

// RemoveObserver unregisters an observer
func (c *Checker) RemoveObserver(observer Observer) {
	for i, o := range c.observers {
		if o == observer {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (c *Checker) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range c.observers {
		observer.OnEvent(event)
	}
}

// CheckArrays reports, for each entry of tables, which required array
// properties are absent.
//
// Warnings come out in table order and, within a table, in the order of
// RequiredArrayProperties. Entries that are not objects are skipped.
// The input is never modified.
func (c *Checker) CheckArrays(collection string, tables []document.Value) []Warning {
	runID := uuid.New().String()
	warnings := make([]Warning, 0)

	c.notify(Event{Type: EventCheckStart, RunID: runID, Collection: collection, Data: len(tables)})

	for i, table := range tables {
		if table.Kind() != document.KindObject {
			c.notify(Event{Type: EventTableSkipped, RunID: runID, Collection: collection, Data: map[string]interface{}{
				"position": i,
				"kind":     table.Kind().String(),
			}})
			continue
		}

		name := table.StringOr("name", UnknownLabel)
		id := table.StringOr("$id", UnknownLabel)

		missing := make([]string, 0, len(RequiredArrayProperties))
		for _, prop := range RequiredArrayProperties {
			if table.Has(prop) {
				continue
			}
			missing = append(missing, prop)
			warnings = append(warnings, Warning{
				Collection: collection,
				Position:   i,
				TableName:  name,
				TableID:    id,
				Property:   prop,
			})
		}

		c.notify(Event{Type: EventTableChecked, RunID: runID, Collection: collection, Data: map[string]interface{}{
			"position": i,
			"table":    name,
			"table_id": id,
			"missing":  missing,
		}})
	}

	c.notify(Event{Type: EventCheckEnd, RunID: runID, Collection: collection, Data: map[string]interface{}{
		"tables":   len(tables),
		"warnings": len(warnings),
	}})

	return warnings
}

// CheckArrays checks the "tables" collection without observers
func CheckArrays(tables []document.Value) []Warning {
	return New().CheckArrays(DefaultCollection, tables)
}
