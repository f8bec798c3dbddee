package entity

import "time"

// Vote is a single immutable ballot for one option.
type Vote struct {
	ID        int64
	Option    string
	IPAddress string
	CreatedAt time.Time
}
