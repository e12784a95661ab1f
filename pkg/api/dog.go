package api

import "encoding/json"

// StatusSuccess is the value of the "status" field on successful Dog CEO responses.
const StatusSuccess = "success"

// BreedsResponse представляет ответ GET /breeds/list/all
// При status == "success" Message это объект порода -> список под-пород,
// при ошибке API присылает строку
type BreedsResponse struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}

// ImagesResponse представляет ответ GET /breed/{breed}/images/random/{n}
// Message оставлен сырым: API может вернуть строку вместо массива
type ImagesResponse struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}
