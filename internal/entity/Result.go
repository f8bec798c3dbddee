package entity

type OptionResult struct {
	Option     string
	Count      int64
	Percentage float64
}

type Results struct {
	Options []OptionResult
	Total   int64
}
