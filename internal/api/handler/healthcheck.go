package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
