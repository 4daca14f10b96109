package domain

// Challenge is the puzzle issued to a single connection.
type Challenge struct {
	Secret    string
	Zeros     int
	Algorithm string
	// Text is the wire form "secret:000".
	Text string
}

// Quote is the reward released for a verified solution.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

func (q Quote) String() string {
	if q.Author == "" {
		return q.Text
	}
	return q.Text + " - " + q.Author
}
