package huggingface

import "time"

const (
	// DefaultModel is the default text2text model
	DefaultModel = "google/flan-t5-base"

	// DefaultBaseURL is the default Inference API endpoint
	DefaultBaseURL = "https://api-inference.huggingface.co"

	// DefaultTimeout is the default HTTP client timeout. Cold models can take a while to load.
	DefaultTimeout = 60 * time.Second
)
