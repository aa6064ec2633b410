package bench

// Inputs names the data sources of one run, in invocation order.
type Inputs struct {
	Sequences  string
	Patterns   string
	Answers    string
	HasAnswers bool
}

// CheckArgs validates the positional inputs of a run. Exactly two
// (sequences, patterns) or three (plus answers) are accepted; anything else
// yields a *UsageError carrying usage.
func CheckArgs(usage string, args []string) (Inputs, error) {
	if len(args) < 2 || len(args) > 3 {
		return Inputs{}, &UsageError{Usage: usage, Got: len(args)}
	}
	in := Inputs{Sequences: args[0], Patterns: args[1]}
	if len(args) == 3 {
		in.Answers = args[2]
		in.HasAnswers = true
	}
	return in, nil
}
