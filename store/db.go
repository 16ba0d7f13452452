package store

// DB is the key-value storage collaborator backing the record
// collection. The whole record set lives under a single fixed key.
type DB interface {
	// LoadRecords returns the serialized record set, or nil when
	// nothing has been saved yet.
	LoadRecords() ([]byte, error)
	// SaveRecords overwrites the serialized record set.
	SaveRecords(data []byte) error
	// Close ends the database connection
	Close() error
}
