package http

import (
	"errors"
	"net/http"

	"github.com/wanpc3/Data-Privacy-Protector/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrPartnerAlreadyExists: http.StatusConflict,
	store.ErrPartnerNotFound:      http.StatusNotFound,
	store.ErrFileNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
