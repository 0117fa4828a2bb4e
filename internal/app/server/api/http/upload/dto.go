package upload

import "mime/multipart"

const fileField = "file"

type uploadInput struct {
	RawBody multipart.Form
}

type uploadOutput struct {
	Body struct {
		URL string `json:"url" doc:"Public URL to use as item image"`
	}
}
