package model

// InputFile is a payload to hide inside a host image.
type InputFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// OutputFile is a payload recovered from a host image.
type OutputFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}
