package domain

// Chunk is one incremental unit of a streamed chat completion.
type Chunk struct {
	Choices []ChoiceDelta
}

type ChoiceDelta struct {
	Index int
	// Content is empty when the choice carried no text in this chunk.
	Content string
}
