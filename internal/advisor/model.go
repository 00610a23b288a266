package advisor

type Coordinates struct {
	Lat string
	Lon string
}

// Query is one farmer request as received by /predict.
type Query struct {
	Text        string
	Image       []byte
	ImageName   string
	Language    string
	Coordinates *Coordinates
}

// Result carries the answer and its spoken form; Audio is nil when no audio
// could be produced.
type Result struct {
	Analysis string
	Audio    []byte
}

type PredictResponse struct {
	Analysis     string  `json:"analysis"`
	AudioContent *string `json:"audioContent"`
}
