package model

// Image is a selected profile picture kept around for previews.
type Image struct {
	MediaType string
	Data      []byte
}
