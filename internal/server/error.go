package server

import "steganer/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errHide              = api.Error{Code: "hide_error", Error: "Error while hiding the file inside the image"}
	errExtract           = api.Error{Code: "extract_error", Error: "Error while extracting the hidden file from the image"}
)
