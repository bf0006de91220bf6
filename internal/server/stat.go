package server

import (
	"github.com/dustin/go-humanize"

	"steganer/pkg/model"
)

type humanizedHideStats struct {
	model.HideStats
	SetupHuman        string `json:"setup_human"`
	DataEncodingHuman string `json:"data_encoding_human"`
	ImageSaveHuman    string `json:"image_save_human"`
	PayloadSizeHuman  string `json:"payload_size_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	SetupHuman        string `json:"setup_human"`
	DataDecodingHuman string `json:"data_decoding_human"`
	PayloadSizeHuman  string `json:"payload_size_human"`
}

func toHumanizedHideStats(hideStats model.HideStats, payloadSize int) humanizedHideStats {
	return humanizedHideStats{
		HideStats:         hideStats,
		SetupHuman:        hideStats.Setup.String(),
		DataEncodingHuman: hideStats.DataEncoding.String(),
		ImageSaveHuman:    hideStats.ImageSave.String(),
		PayloadSizeHuman:  humanize.Bytes(uint64(payloadSize)),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats, payloadSize int) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:      extractStats,
		SetupHuman:        extractStats.Setup.String(),
		DataDecodingHuman: extractStats.DataDecoding.String(),
		PayloadSizeHuman:  humanize.Bytes(uint64(payloadSize)),
	}
}
