package entity

// Tally is the running vote count of one option.
type Tally struct {
	Option string
	Count  int64
}
