package api

import (
	"steganer/pkg/model"
)

type HideImageRequest struct {
	ImageToHideIn []byte          `json:"image_to_hide_in"`
	FileToHide    model.InputFile `json:"file_to_hide"`
}

type HideImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
}

type ExtractImageRequest struct {
	EncodedImage []byte `json:"encoded_image"`
	FileName     string `json:"file_name"`
}

type ExtractImageResponse struct {
	ExtractedFile model.OutputFile `json:"extracted_file"`
}

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
