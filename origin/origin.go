package origin

/* Origin classifies where an inbound HTTP call came from.
 * Console-origin calls are edits made through the fake third party's own
 * operator UI; everything else is an external caller such as the ERP.
 */
type Origin int

const (
	Console Origin = iota + 1
	External
)

// String returns the string representation of the origin
func (o Origin) String() string {
	switch o {
	case Console:
		return "console-origin"
	case External:
		return "external-origin"
	default:
		return "unknown"
	}
}

// Classifier decides the origin of a call from its request metadata.
// It is a pure function of the Origin header so it can be tested on its own.
type Classifier struct {
	console map[string]struct{}
}

// NewClassifier creates a classifier that treats the given browser origins
// as the operator console
func NewClassifier(consoleOrigins []string) *Classifier {
	console := make(map[string]struct{}, len(consoleOrigins))
	for _, o := range consoleOrigins {
		console[o] = struct{}{}
	}
	return &Classifier{console: console}
}

// Classify maps the Origin header of a request to a classification
func (c *Classifier) Classify(originHeader string) Origin {
	if _, ok := c.console[originHeader]; ok {
		return Console
	}
	return External
}
