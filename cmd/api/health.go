package main

import "net/http"

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports that the API process is up.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]bool
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
