// Package tm1test provides an in-memory TM1 REST server for tests. It keeps
// dimensions, hierarchies, subsets, cubes, views and processes in memory and
// serves the subset of /api/v1 used by the tm1 client, including session
// handling.
package tm1test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// Default credentials accepted by the server
const (
	DefaultUser     = "admin"
	DefaultPassword = "apple"
	ServerName      = "tm1test"
	ProductVersion  = "11.8.02300.1"
	sessionCookie   = "TM1SessionId"
)

var bindPattern = regexp.MustCompile(`^Dimensions\('(.*)'\)$`)

type element struct {
	Name string `json:"Name"`
	Type string `json:"Type"`
}

type hierarchy struct {
	name     string
	elements []element
	subsets  map[bool][]string
}

type dimension struct {
	name        string
	hierarchies []*hierarchy
}

type cube struct {
	name       string
	dimensions []string
	views      map[bool][]string
}

// Server is an in-memory TM1 server
type Server struct {
	srv *httptest.Server

	mu          sync.Mutex
	user        string
	password    string
	sessions    map[string]bool
	nextSession int
	logouts     int
	dimensions  []*dimension
	cubes       []*cube
	processes   []string
	requests    []string
	failures    map[string]int
}

// NewServer starts an in-memory TM1 server accepting the default credentials
func NewServer() *Server {
	s := &Server{
		user:     DefaultUser,
		password: DefaultPassword,
		sessions: map[string]bool{},
		failures: map[string]int{},
	}
	s.srv = httptest.NewServer(s.router())
	return s
}

// URL returns the root URL of the server
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down
func (s *Server) Close() {
	s.srv.Close()
}

// Reset removes every object, session and recorded request
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = map[string]bool{}
	s.logouts = 0
	s.dimensions = nil
	s.cubes = nil
	s.processes = nil
	s.requests = nil
	s.failures = map[string]int{}
}

// AddDimension adds a dimension with a same-named hierarchy holding numeric elements
func (s *Server) AddDimension(name string, elements ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &hierarchy{name: name, subsets: map[bool][]string{}}
	for _, e := range elements {
		h.elements = append(h.elements, element{Name: e, Type: "Numeric"})
	}
	s.dimensions = append(s.dimensions, &dimension{name: name, hierarchies: []*hierarchy{h}})
}

// AddSubset adds a subset to the same-named hierarchy of a dimension
func (s *Server) AddSubset(dim, name string, private bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h := s.hierarchy(dim, dim); h != nil {
		h.subsets[private] = append(h.subsets[private], name)
	}
}

// AddCube adds a cube over the provided dimensions
func (s *Server) AddCube(name string, dims ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cubes = append(s.cubes, &cube{name: name, dimensions: dims, views: map[bool][]string{}})
}

// AddView adds a view to a cube
func (s *Server) AddView(cubeName, name string, private bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.cube(cubeName); c != nil {
		c.views[private] = append(c.views[private], name)
	}
}

// AddProcess adds a process
func (s *Server) AddProcess(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes = append(s.processes, name)
}

// FailOn makes every request with the provided method and decoded path
// return the provided status
func (s *Server) FailOn(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// DimensionNames returns the names of the existing dimensions
func (s *Server) DimensionNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.dimensions))
	for _, d := range s.dimensions {
		names = append(names, d.name)
	}
	return names
}

// Elements returns the element names of a dimension hierarchy
func (s *Server) Elements(dim, hier string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hierarchy(dim, hier)
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.elements))
	for _, e := range h.elements {
		names = append(names, e.Name)
	}
	return names
}

// SubsetNames returns the subsets of the same-named hierarchy of a dimension
func (s *Server) SubsetNames(dim string, private bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h := s.hierarchy(dim, dim); h != nil {
		return slices.Clone(h.subsets[private])
	}
	return nil
}

// CubeNames returns the names of the existing cubes
func (s *Server) CubeNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.cubes))
	for _, c := range s.cubes {
		names = append(names, c.name)
	}
	return names
}

// CubeDimensions returns the ordered dimensions of a cube
func (s *Server) CubeDimensions(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.cube(name); c != nil {
		return slices.Clone(c.dimensions)
	}
	return nil
}

// ViewNames returns the views of a cube
func (s *Server) ViewNames(cubeName string, private bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.cube(cubeName); c != nil {
		return slices.Clone(c.views[private])
	}
	return nil
}

// ProcessNames returns the names of the existing processes
func (s *Server) ProcessNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.processes)
}

// Requests returns every request received, as "METHOD /decoded/path"
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// RequestCount returns how many requests were received with the provided method and decoded path
func (s *Server) RequestCount(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r == method+" "+path {
			n++
		}
	}
	return n
}

// Logouts returns the number of sessions closed by clients
func (s *Server) Logouts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logouts
}

// OpenSessions returns the number of sessions not closed yet
func (s *Server) OpenSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.record, s.authenticate)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/Configuration/ServerName/$value", s.text(ServerName)).Methods(http.MethodGet)
	api.HandleFunc("/Configuration/ProductVersion/$value", s.text(ProductVersion)).Methods(http.MethodGet)
	api.HandleFunc("/ActiveSession/tm1.Close", s.logout).Methods(http.MethodPost)

	api.HandleFunc("/Dimensions", s.listDimensions).Methods(http.MethodGet)
	api.HandleFunc("/Dimensions", s.createDimension).Methods(http.MethodPost)
	api.HandleFunc("/Dimensions('{dim}')", s.getDimension).Methods(http.MethodGet)
	api.HandleFunc("/Dimensions('{dim}')", s.deleteDimension).Methods(http.MethodDelete)
	api.HandleFunc("/Dimensions('{dim}')/Hierarchies('{hier}')/Elements/$count", s.countElements).Methods(http.MethodGet)
	api.HandleFunc("/Dimensions('{dim}')/Hierarchies('{hier}')/{collection:Subsets|PrivateSubsets}", s.listSubsets).Methods(http.MethodGet)
	api.HandleFunc("/Dimensions('{dim}')/Hierarchies('{hier}')/{collection:Subsets|PrivateSubsets}('{name}')", s.deleteSubset).Methods(http.MethodDelete)

	api.HandleFunc("/Cubes", s.listCubes).Methods(http.MethodGet)
	api.HandleFunc("/Cubes", s.createCube).Methods(http.MethodPost)
	api.HandleFunc("/Cubes('{cube}')", s.getCube).Methods(http.MethodGet)
	api.HandleFunc("/Cubes('{cube}')", s.deleteCube).Methods(http.MethodDelete)
	api.HandleFunc("/Cubes('{cube}')/{collection:Views|PrivateViews}", s.listViews).Methods(http.MethodGet)
	api.HandleFunc("/Cubes('{cube}')/{collection:Views|PrivateViews}('{name}')", s.deleteView).Methods(http.MethodDelete)

	api.HandleFunc("/Processes", s.listProcesses).Methods(http.MethodGet)
	api.HandleFunc("/Processes('{name}')", s.deleteProcess).Methods(http.MethodDelete)

	return r
}

// record logs every request and applies configured failures
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		status, fail := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if fail {
			writeError(w, status, "500", "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate accepts a known session cookie or valid credentials, in
// which case a new session is opened
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		if c, err := r.Cookie(sessionCookie); err == nil && s.sessions[c.Value] {
			s.mu.Unlock()
			next.ServeHTTP(w, r)
			return
		}

		if !s.validCredentials(r.Header.Get("Authorization")) {
			s.mu.Unlock()
			writeError(w, http.StatusUnauthorized, "", "invalid credentials")
			return
		}

		s.nextSession++
		id := "session-" + strconv.Itoa(s.nextSession)
		s.sessions[id] = true
		s.mu.Unlock()

		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: id, Path: "/api/", HttpOnly: true})
		next.ServeHTTP(w, r)
	})
}

func (s *Server) validCredentials(header string) bool {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok {
		return false
	}
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	parts := strings.Split(string(b), ":")
	switch scheme {
	case "Basic":
		return len(parts) == 2 && parts[0] == s.user && parts[1] == s.password
	case "CAMNamespace":
		return len(parts) == 3 && parts[0] == s.user && parts[1] == s.password && parts[2] != ""
	}
	return false
}

func (s *Server) text(value string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, value)
	}
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, err := r.Cookie(sessionCookie); err == nil && s.sessions[c.Value] {
		delete(s.sessions, c.Value)
		s.logouts++
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listDimensions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.dimensions))
	for _, d := range s.dimensions {
		names = append(names, d.name)
	}
	writeNames(w, names)
}

func (s *Server) getDimension(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r, "dim")
	if s.dimension(name) == nil {
		writeError(w, http.StatusNotFound, "278", fmt.Sprintf("Dimension not found: %s", name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"Name": name})
}

func (s *Server) createDimension(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"Name"`
		Hierarchies []struct {
			Name     string    `json:"Name"`
			Elements []element `json:"Elements"`
		} `json:"Hierarchies"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeError(w, http.StatusBadRequest, "", "invalid dimension body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimension(body.Name) != nil {
		writeError(w, http.StatusBadRequest, "", fmt.Sprintf("Dimension already exists: %s", body.Name))
		return
	}
	d := &dimension{name: body.Name}
	for _, h := range body.Hierarchies {
		d.hierarchies = append(d.hierarchies, &hierarchy{name: h.Name, elements: h.Elements, subsets: map[bool][]string{}})
	}
	s.dimensions = append(s.dimensions, d)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteDimension(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r, "dim")
	i := slices.IndexFunc(s.dimensions, func(d *dimension) bool { return d.name == name })
	if i < 0 {
		writeError(w, http.StatusNotFound, "278", fmt.Sprintf("Dimension not found: %s", name))
		return
	}
	for _, c := range s.cubes {
		if slices.Contains(c.dimensions, name) {
			writeError(w, http.StatusBadRequest, "", fmt.Sprintf("Dimension %s is used by cube %s", name, c.name))
			return
		}
	}
	s.dimensions = slices.Delete(s.dimensions, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) countElements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hierarchy(vars(r, "dim"), vars(r, "hier"))
	if h == nil {
		writeError(w, http.StatusNotFound, "", "Hierarchy not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, len(h.elements))
}

func (s *Server) listSubsets(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hierarchy(vars(r, "dim"), vars(r, "hier"))
	if h == nil {
		writeError(w, http.StatusNotFound, "", "Hierarchy not found")
		return
	}
	writeNames(w, h.subsets[mux.Vars(r)["collection"] == "PrivateSubsets"])
}

func (s *Server) deleteSubset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hierarchy(vars(r, "dim"), vars(r, "hier"))
	if h == nil {
		writeError(w, http.StatusNotFound, "", "Hierarchy not found")
		return
	}
	private := mux.Vars(r)["collection"] == "PrivateSubsets"
	if !remove(h.subsets, private, vars(r, "name")) {
		writeError(w, http.StatusNotFound, "", "Subset not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCubes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type named struct {
		Name string `json:"Name"`
	}
	type cubeEntry struct {
		Name       string  `json:"Name"`
		Dimensions []named `json:"Dimensions,omitempty"`
	}
	entries := make([]cubeEntry, 0, len(s.cubes))
	for _, c := range s.cubes {
		e := cubeEntry{Name: c.name}
		if strings.Contains(r.URL.Query().Get("$expand"), "Dimensions") {
			for _, d := range c.dimensions {
				e.Dimensions = append(e.Dimensions, named{Name: d})
			}
		}
		entries = append(entries, e)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"value": entries})
}

func (s *Server) getCube(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r, "cube")
	if s.cube(name) == nil {
		writeError(w, http.StatusNotFound, "", fmt.Sprintf("Cube not found: %s", name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"Name": name})
}

func (s *Server) createCube(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name       string   `json:"Name"`
		Dimensions []string `json:"Dimensions@odata.bind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		writeError(w, http.StatusBadRequest, "", "invalid cube body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cube(body.Name) != nil {
		writeError(w, http.StatusBadRequest, "", fmt.Sprintf("Cube already exists: %s", body.Name))
		return
	}
	c := &cube{name: body.Name, views: map[bool][]string{}}
	for _, bind := range body.Dimensions {
		m := bindPattern.FindStringSubmatch(bind)
		if m == nil {
			writeError(w, http.StatusBadRequest, "", fmt.Sprintf("invalid dimension binding: %s", bind))
			return
		}
		name := strings.ReplaceAll(m[1], "''", "'")
		if s.dimension(name) == nil {
			writeError(w, http.StatusNotFound, "278", fmt.Sprintf("Dimension not found: %s", name))
			return
		}
		c.dimensions = append(c.dimensions, name)
	}
	s.cubes = append(s.cubes, c)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteCube(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r, "cube")
	i := slices.IndexFunc(s.cubes, func(c *cube) bool { return c.name == name })
	if i < 0 {
		writeError(w, http.StatusNotFound, "", fmt.Sprintf("Cube not found: %s", name))
		return
	}
	s.cubes = slices.Delete(s.cubes, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listViews(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cube(vars(r, "cube"))
	if c == nil {
		writeError(w, http.StatusNotFound, "", "Cube not found")
		return
	}
	writeNames(w, c.views[mux.Vars(r)["collection"] == "PrivateViews"])
}

func (s *Server) deleteView(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cube(vars(r, "cube"))
	if c == nil {
		writeError(w, http.StatusNotFound, "", "Cube not found")
		return
	}
	private := mux.Vars(r)["collection"] == "PrivateViews"
	if !remove(c.views, private, vars(r, "name")) {
		writeError(w, http.StatusNotFound, "", "View not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProcesses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeNames(w, s.processes)
}

func (s *Server) deleteProcess(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := vars(r, "name")
	i := slices.Index(s.processes, name)
	if i < 0 {
		writeError(w, http.StatusNotFound, "", fmt.Sprintf("Process not found: %s", name))
		return
	}
	s.processes = slices.Delete(s.processes, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

// dimension, hierarchy and cube must be called with the lock held
func (s *Server) dimension(name string) *dimension {
	for _, d := range s.dimensions {
		if d.name == name {
			return d
		}
	}
	return nil
}

func (s *Server) hierarchy(dim, hier string) *hierarchy {
	d := s.dimension(dim)
	if d == nil {
		return nil
	}
	for _, h := range d.hierarchies {
		if h.name == hier {
			return h
		}
	}
	return nil
}

func (s *Server) cube(name string) *cube {
	for _, c := range s.cubes {
		if c.name == name {
			return c
		}
	}
	return nil
}

// vars returns a route variable with OData quote escaping removed
func vars(r *http.Request, name string) string {
	return strings.ReplaceAll(mux.Vars(r)[name], "''", "'")
}

func remove(m map[bool][]string, private bool, name string) bool {
	i := slices.Index(m[private], name)
	if i < 0 {
		return false
	}
	m[private] = slices.Delete(m[private], i, i+1)
	return true
}

func writeNames(w http.ResponseWriter, names []string) {
	type named struct {
		Name string `json:"Name"`
	}
	value := make([]named, 0, len(names))
	for _, n := range names {
		value = append(value, named{Name: n})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"value": value})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	})
}
