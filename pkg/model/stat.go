package model

import (
	"time"
)

type HideStats struct {
	Setup        time.Duration `json:"setup"`
	DataEncoding time.Duration `json:"data_encoding"`
	ImageSave    time.Duration `json:"image_save"`
}

type ExtractStats struct {
	Setup        time.Duration `json:"setup"`
	DataDecoding time.Duration `json:"data_decoding"`
}
