/*
   GaxRip - GSF ripper for the GAX sound engine
   Copyright (c) 2023, the GaxRip authors

   This file is part of GaxRip.

   GaxRip is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   GaxRip is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with GaxRip. If not, see <http://www.gnu.org/licenses/>.
*/

package control

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/gaxrip/gaxrip/pkg/repo"
)

/*
	NewAPIServer creates the control API server. It answers version and
	search queries against the rip repository index, and accepts ROM images
	for driver identification via the inspect endpoint.
*/
func NewAPIServer(address string, index *repo.Index) *APIServer {
	return &APIServer{address: address, index: index}
}

//
type APIServer struct {
	address string
	index   *repo.Index
	server  *http.Server
}

//
func (s *APIServer) Serve() error {

	a := &api{index: s.index}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/version", a.version).Methods("GET")
	router.HandleFunc("/search", a.search).Methods("GET")
	router.HandleFunc("/inspect", a.inspect).Methods("POST")

	s.server = &http.Server{
		Addr:         s.address,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.WithField("address", s.address).Info("starting control API server")
	return s.server.ListenAndServe()
}

//
func (s *APIServer) Stop() error {
	if s.server == nil {
		return nil
	}
	return s.server.Close()
}

//
type api struct {
	index *repo.Index
}

// handleError logs err and sends it as the reply with the given status,
// when err is not nil. Returns true in that case, so callers can bail out.
func handleError(err error, status int, w http.ResponseWriter) bool {
	if err == nil {
		return false
	}
	log.Errorf("API error: %v", err)
	http.Error(w, fmt.Sprintf("%v", err), status)
	return true
}

//
func sendReply(body []byte, status int, w http.ResponseWriter) {
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}

//
func sendJSONReply(obj interface{}, status int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Errorf("problem sending JSON reply: %v", err)
	}
}

//
func wantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "application/json")
}

//
func getArg(req *http.Request, arg string) string {
	return req.URL.Query().Get(arg)
}

//
func getIntArg(req *http.Request, arg string, def int) (int, error) {
	str := getArg(req, arg)
	if str == "" {
		return def, nil
	}
	ret, err := strconv.Atoi(str)
	if err != nil {
		return def, fmt.Errorf("invalid value for '%s': %s", arg, str)
	}
	return ret, nil
}

