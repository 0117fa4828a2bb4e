package upload

import (
	"net/http"

	"collectionhub/internal/domain/upload"

	"github.com/danielgtaylor/huma/v2"
)

// запас на заголовки multipart поверх самого файла
const multipartOverhead = 64 << 10

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:  "uploads-create",
		Method:       http.MethodPost,
		Path:         "/api/uploads",
		Summary:      "Загрузка изображения предмета",
		Description:  "Multipart form with a `file` field. JPEG, PNG or GIF up to 10 MiB; wide images are downscaled.",
		Tags:         []string{"uploads"},
		MaxBodyBytes: upload.MaxSize + multipartOverhead,
		Security:     []map[string][]string{{"cookieAuth": {}}},
		Middlewares:  h.middleware,
	}
}
