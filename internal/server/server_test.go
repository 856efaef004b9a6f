package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ethToolBox/internal/console"
	"ethToolBox/internal/model"
	"ethToolBox/internal/session"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c := console.New(session.NewDispatcher(nil, nil))
	return New(Options{Listen: "127.0.0.1:0"}, console.NewSession("test-session", c, nil, nil), nil)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeEntries(t *testing.T, rec *httptest.ResponseRecorder) entriesResponse {
	t.Helper()
	var resp entriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"session":"test-session"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestDispatchAppendsEntry(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/dispatch", `{"kind":"towei","inputs":{"number":"1"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	resp := decodeEntries(t, rec)
	if len(resp.Entries) != 1 {
		t.Fatalf("entries = %+v", resp.Entries)
	}
	got := resp.Entries[0]
	if got.Seq != 3 || got.Failed || got.Line != `wei(ether("1")) => 1000000000000000000 wei` {
		t.Fatalf("unexpected entry %+v", got)
	}

	rec = do(t, s, http.MethodGet, "/api/v1/log", "")
	if n := len(decodeEntries(t, rec).Entries); n != 3 {
		t.Fatalf("log has %d entries, want 3", n)
	}
	rec = do(t, s, http.MethodGet, "/api/v1/log?since=2", "")
	if entries := decodeEntries(t, rec).Entries; len(entries) != 1 || entries[0].Seq != 3 {
		t.Fatalf("since=2 returned %+v", entries)
	}
}

func TestDispatchEncodeWithSignature(t *testing.T) {
	s := newTestServer(t)
	body := `{"kind":"encode","signature":"transfer(address,uint256)","args":["0x2c7536E3605D9C16a7a3D7b1898e529396a65c23","1000"]}`
	rec := do(t, s, http.MethodPost, "/api/v1/dispatch", body)
	resp := decodeEntries(t, rec)
	if len(resp.Entries) != 1 || !strings.Contains(resp.Entries[0].Line, "=> 0xa9059cbb") {
		t.Fatalf("unexpected entries %+v", resp.Entries)
	}
}

func TestDispatchFailureIsLogged(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/dispatch", `{"kind":"utf8","inputs":{"text":"0xzz"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decodeEntries(t, rec); len(resp.Entries) != 1 || !resp.Entries[0].Failed {
		t.Fatalf("expected failed entry, got %+v", resp.Entries)
	}
}

func TestDispatchBadRequests(t *testing.T) {
	s := newTestServer(t)
	cases := []string{
		`{"kind":"rm -rf"}`,
		`{"inputs":{}}`,
		`{"kind":"hex","inputs":{"colour":"red"}}`,
		`not json`,
	}
	for _, body := range cases {
		rec := do(t, s, http.MethodPost, "/api/v1/dispatch", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", body, rec.Code)
		}
	}
	rec := do(t, s, http.MethodGet, "/api/v1/log", "")
	if n := len(decodeEntries(t, rec).Entries); n != 2 {
		t.Fatalf("rejected requests appended entries: %d", n)
	}
}

func TestDispatchReportsSignatureError(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/dispatch", `{"kind":"encode","signature":"transfer(address","args":["0x01"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"abi: `) {
		t.Fatalf("parse message not exposed: %s", rec.Body.String())
	}
}

func TestLogSince(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/api/v1/eval", `{"command":"hex a"}`)
	do(t, s, http.MethodPost, "/api/v1/eval", `{"command":"hex b"}`)

	cases := []struct {
		query  string
		status int
		seqs   []int
	}{
		{"", http.StatusOK, []int{1, 2, 3, 4}},
		{"?since=0", http.StatusOK, []int{1, 2, 3, 4}},
		{"?since=3", http.StatusOK, []int{4}},
		{"?since=4", http.StatusOK, nil},
		{"?since=99", http.StatusOK, nil},
		{"?since=-1", http.StatusBadRequest, nil},
		{"?since=abc", http.StatusBadRequest, nil},
	}
	for _, tc := range cases {
		rec := do(t, s, http.MethodGet, "/api/v1/log"+tc.query, "")
		if rec.Code != tc.status {
			t.Fatalf("%q: status = %d, want %d", tc.query, rec.Code, tc.status)
		}
		if tc.status != http.StatusOK {
			continue
		}
		var seqs []int
		for _, e := range decodeEntries(t, rec).Entries {
			seqs = append(seqs, e.Seq)
		}
		if !reflect.DeepEqual(seqs, tc.seqs) {
			t.Fatalf("%q: seqs = %v, want %v", tc.query, seqs, tc.seqs)
		}
	}
}

func TestEval(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/eval", `{"command":"sig \"transfer(address,uint256)\""}`)
	resp := decodeEntries(t, rec)
	if len(resp.Entries) != 1 || !strings.HasSuffix(resp.Entries[0].Line, "=> 0xa9059cbb") {
		t.Fatalf("unexpected entries %+v", resp.Entries)
	}

	rec = do(t, s, http.MethodPost, "/api/v1/eval", `{"command":"process.exit()"}`)
	resp = decodeEntries(t, rec)
	if len(resp.Entries) != 1 || !resp.Entries[0].Failed {
		t.Fatalf("expected failed entry, got %+v", resp.Entries)
	}
}

func TestConvertIsStateless(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/v1/convert", `{"kind":"namehash","input":"eth"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	rec = do(t, s, http.MethodPost, "/api/v1/convert", `{"kind":"namehash","input":"a..b"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if n := len(s.session.Entries()); n != 2 {
		t.Fatalf("convert appended to the log: %d entries", n)
	}
}

func TestKinds(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/v1/kinds", "")
	var got []kindInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(model.Kinds()) {
		t.Fatalf("kinds = %d, want %d", len(got), len(model.Kinds()))
	}
	if got[0].Kind != model.KindKeccak256 || len(got[0].Fields) != 1 {
		t.Fatalf("unexpected first kind %+v", got[0])
	}
}
