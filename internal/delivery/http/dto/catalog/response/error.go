package response

import "github.com/LavaJover/shvark-catalog-service/internal/usecase"

type ErrorResponse struct {
	Message string                     `json:"message"`
	Details []usecase.ValidationError `json:"details,omitempty"`
}
