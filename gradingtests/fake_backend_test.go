package gradingtests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/launchdarkly/grading-contract-tests/framework"
	"github.com/launchdarkly/grading-contract-tests/servicedef"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/require"
)

type fakeUser struct {
	password string
	id       int
	role     string
}

type uploadedSubmission struct {
	fileName     string
	contentType  string
	studentID    string
	assignmentID string
}

// fakeBackend imitates the grading backend with the seeded fixture accounts. Tests change the
// routes or users before the server is started.
type fakeBackend struct {
	routes  map[string]http.Handler
	users   map[string]fakeUser
	uploads []uploadedSubmission
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		users: map[string]fakeUser{
			"student": {password: "password", id: 1, role: servicedef.RoleStudent},
			"teacher": {password: "password", id: 2, role: servicedef.RoleTeacher},
			"admin":   {password: "password", id: 3, role: servicedef.RoleAdmin},
		},
	}
	b.routes = map[string]http.Handler{
		"/":                   httphelpers.HandlerWithStatus(200),
		servicedef.PathHealth: httphelpers.HandlerWithJSONResponse(map[string]string{"status": "UP"}, nil),
		servicedef.PathLogin:  http.HandlerFunc(b.handleLogin),
	}
	b.routes[servicedef.PathCourses] = jsonResponse(`[{"id":1,"courseCode":"CS101"},{"id":2,"courseCode":"CS102"}]`)
	b.routes[servicedef.PathAssignments] = jsonResponse(`{"content":[{"id":1,"title":"Essay"}],"totalElements":1}`)
	b.routes[servicedef.PathSubmissions] = http.HandlerFunc(b.handleUpload)
	b.routes[servicedef.SubmissionStatusPath(42)] = jsonResponse(`{"submissionId":42,"status":"PROCESSING"}`)
	b.routes[servicedef.TeacherPendingGradesPath(2)] = jsonResponse(`{"content":[],"totalElements":0}`)
	b.routes[servicedef.StudentGradesPath(1)] = jsonResponse(`[{"id":5,"score":88}]`)
	b.routes[servicedef.StudentAppealsPath(1)] = jsonResponse(`[]`)
	b.routes[servicedef.TeacherPendingAppealsPath(2)] = jsonResponse(`[{"id":9,"status":"PENDING"}]`)
	return b
}

func jsonResponse(body string) http.Handler {
	return httphelpers.HandlerWithResponse(200,
		http.Header{"Content-Type": []string{"application/json"}}, []byte(body))
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := b.routes[r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	w.WriteHeader(404)
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var params servicedef.LoginParams
	if r.Method != "POST" || json.NewDecoder(r.Body).Decode(&params) != nil {
		w.WriteHeader(400)
		return
	}
	user, ok := b.users[params.Username]
	if !ok || user.password != params.Password {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"success":false,"error":"Invalid username or password"}`))
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: params.Username, Path: "/"})
	httphelpers.HandlerWithJSONResponse(map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"id":       user.id,
			"username": params.Username,
			"role":     user.role,
		},
	}, nil).ServeHTTP(w, r)
}

func (b *fakeBackend) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(405)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(400)
		return
	}
	_, _ = ioutil.ReadAll(file)
	file.Close()
	b.uploads = append(b.uploads, uploadedSubmission{
		fileName:     header.Filename,
		contentType:  header.Header.Get("Content-Type"),
		studentID:    r.FormValue("studentId"),
		assignmentID: r.FormValue("assignmentId"),
	})
	jsonResponse(`{"submissionId":42,"message":"File uploaded successfully"}`).ServeHTTP(w, r)
}

type suiteRun struct {
	results  *framework.Results
	requests []httphelpers.HTTPRequestInfo
}

func (s suiteRun) paths() []string {
	var ret []string
	for _, r := range s.requests {
		ret = append(ret, r.Request.Method+" "+r.Request.URL.Path)
	}
	return ret
}

// requestRecorder keeps every request it passes to the delegate handler. The body is
// read once and put back so that the delegate can still decode it.
type requestRecorder struct {
	delegate http.Handler
	lock     sync.Mutex
	requests []httphelpers.HTTPRequestInfo
}

func (rr *requestRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		body, _ = ioutil.ReadAll(r.Body)
		r.Body = ioutil.NopCloser(bytes.NewReader(body))
	}
	rr.lock.Lock()
	rr.requests = append(rr.requests, httphelpers.HTTPRequestInfo{Request: r, Body: body})
	rr.lock.Unlock()
	rr.delegate.ServeHTTP(w, r)
}

func (rr *requestRecorder) recorded() []httphelpers.HTTPRequestInfo {
	rr.lock.Lock()
	defer rr.lock.Unlock()
	return append([]httphelpers.HTTPRequestInfo(nil), rr.requests...)
}

// runAgainst runs the suite against the handler, which serves as both backend and frontend.
func runAgainst(t *testing.T, handler http.Handler, config SuiteConfig, opts RunOptions) suiteRun {
	var run suiteRun
	recorder := &requestRecorder{delegate: handler}
	httphelpers.WithServer(recorder, func(server *httptest.Server) {
		harness, err := framework.NewTestHarness(server.URL+"/", server.URL, nil)
		require.NoError(t, err)
		run.results = RunTestSuite(harness, config, opts)
	})
	run.requests = recorder.recorded()
	return run
}

// fixturesDir returns a directory containing the document used by the upload test.
func fixturesDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, submissionFixtureName), []byte("PK fake docx"), 0644))
	return dir
}

func requireCategory(t *testing.T, key string) Category {
	c, ok := FindCategory(key)
	require.True(t, ok, "category %q", key)
	return c
}
