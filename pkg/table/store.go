package table

// Store is an ordered sequence of opaque row data objects. Rows are usually
// maps or structs whose fields feed cell-renderer mappings.
type Store struct {
	rows []any
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a row.
func (s *Store) Add(row any) {
	s.rows = append(s.rows, row)
}

// AddToStart prepends a row, shifting existing rows down.
func (s *Store) AddToStart(row any) {
	s.rows = append([]any{row}, s.rows...)
}

// Count returns the number of rows.
func (s *Store) Count() int {
	return len(s.rows)
}

// Row returns the row at position i.
func (s *Store) Row(i int) (any, bool) {
	if i < 0 || i >= len(s.rows) {
		return nil, false
	}
	return s.rows[i], true
}

// Rows returns the rows in order.
func (s *Store) Rows() []any {
	return append([]any(nil), s.rows...)
}
