// Handler tests run the whole route stack in-process via app.Test, backed
// by an in-memory Badger store, so they cover binding, status mapping, and
// the store round trip without a network or a disk.
package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/Ryan2486/Bellman/bellmanford"
	"github.com/Ryan2486/Bellman/core"
	"github.com/Ryan2486/Bellman/store"
	"github.com/Ryan2486/Bellman/store/badgerstore"
)

func TestSolve_MinimizeBasic(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/solve", triangleSolve("minimize"))
	require.Equal(t, 200, resp.StatusCode)

	res := decodeResult(t, resp)
	require.Equal(t, bellmanford.Finite(3), res.OptimalDistance)
	require.Equal(t, [][]string{{"A", "B", "C"}}, res.OptimalPaths)
	require.False(t, res.CycleDetected)
}

func TestSolve_MaximizeBasic(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/solve", triangleSolve("maximize"))
	require.Equal(t, 200, resp.StatusCode)

	res := decodeResult(t, resp)
	require.Equal(t, bellmanford.Finite(5), res.OptimalDistance)
	require.Equal(t, [][]string{{"A", "C"}}, res.OptimalPaths)
}

func TestSolve_DefaultModeIsMinimize(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/solve", triangleSolve(""))
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, bellmanford.Finite(3), decodeResult(t, resp).OptimalDistance)
}

func TestSolve_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/solve", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)
}

func TestSolve_UnknownMode(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/solve", triangleSolve("fastest"))
	require.Equal(t, 400, resp.StatusCode)
}

func TestSolve_DuplicateNode(t *testing.T) {
	app := newTestApp(t)

	body := triangleSolve("minimize")
	body.Nodes = append(body.Nodes, "A")
	resp := doJSON(t, app, "POST", "/solve", body)
	require.Equal(t, 422, resp.StatusCode)
}

func TestSolve_SourceNotInGraph(t *testing.T) {
	app := newTestApp(t)

	body := triangleSolve("minimize")
	body.Source = "Z"
	resp := doJSON(t, app, "POST", "/solve", body)
	require.Equal(t, 422, resp.StatusCode)
}

func TestSolve_CycleDetectedIsStill200(t *testing.T) {
	app := newTestApp(t)

	body := solveRequest{
		Nodes: []string{"A", "B"},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "A", Weight: -2},
		},
		Source: "A",
		Target: "B",
	}
	resp := doJSON(t, app, "POST", "/solve", body)
	require.Equal(t, 200, resp.StatusCode)

	res := decodeResult(t, resp)
	require.True(t, res.CycleDetected)
	require.Empty(t, res.OptimalPaths)
}

func TestGraphs_SaveLoadListDelete(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/graphs", sampleRecord("demo"))
	require.Equal(t, 201, resp.StatusCode)
	id := decodeID(t, resp)
	require.NotEmpty(t, id)

	resp = doJSON(t, app, "GET", "/graphs/"+id, nil)
	require.Equal(t, 200, resp.StatusCode)
	var rec store.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	require.Equal(t, "demo", rec.Name)
	require.Equal(t, "A", rec.Source)
	require.Equal(t, bellmanford.Minimize, rec.Mode)

	resp = doJSON(t, app, "GET", "/graphs", nil)
	require.Equal(t, 200, resp.StatusCode)
	var list []store.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)

	resp = doJSON(t, app, "DELETE", "/graphs/"+id, nil)
	require.Equal(t, 204, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/graphs/"+id, nil)
	require.Equal(t, 404, resp.StatusCode)
	resp = doJSON(t, app, "DELETE", "/graphs/"+id, nil)
	require.Equal(t, 404, resp.StatusCode)
}

func TestGraphs_SaveRejectsInvalidSnapshot(t *testing.T) {
	app := newTestApp(t)

	rec := sampleRecord("broken")
	rec.Snapshot.Edges = append(rec.Snapshot.Edges, core.Edge{From: "A", To: "GHOST", Weight: 1})
	resp := doJSON(t, app, "POST", "/graphs", rec)
	require.Equal(t, 422, resp.StatusCode)
}

func TestGraphs_LoadMissing(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/graphs/no-such-record", nil)
	require.Equal(t, 404, resp.StatusCode)
}

func TestSolveGraph_UsesStoredSelections(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/graphs", sampleRecord("stored"))
	require.Equal(t, 201, resp.StatusCode)
	id := decodeID(t, resp)

	resp = doJSON(t, app, "GET", "/graphs/"+id+"/solve", nil)
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, bellmanford.Finite(3), decodeResult(t, resp).OptimalDistance)
}

func TestSolveGraph_ModeQueryOverride(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/graphs", sampleRecord("stored"))
	id := decodeID(t, resp)

	resp = doJSON(t, app, "GET", "/graphs/"+id+"/solve?mode=maximize", nil)
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, bellmanford.Finite(5), decodeResult(t, resp).OptimalDistance)

	resp = doJSON(t, app, "GET", "/graphs/"+id+"/solve?mode=teleport", nil)
	require.Equal(t, 400, resp.StatusCode)
}

func TestSolveGraph_MissingRecord(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/graphs/no-such-record/solve", nil)
	require.Equal(t, 404, resp.StatusCode)
}

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// newTestApp wires the route stack onto a fresh in-memory store.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	st, err := badgerstore.Open(badgerstore.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	app := fiber.New()
	srv := &server{store: st, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	srv.register(app)

	return app
}

// doJSON issues one request against the app; a nil body sends none.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeResult(t *testing.T, resp *http.Response) bellmanford.Result {
	t.Helper()
	defer resp.Body.Close()
	var res bellmanford.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	return res
}

func decodeID(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out["id"]
}

// triangleSolve is the A→B→C / A→C fixture as a one-shot solve body.
func triangleSolve(mode string) solveRequest {
	return solveRequest{
		Nodes: []string{"A", "B", "C"},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 2},
			{From: "A", To: "C", Weight: 5},
			{From: "B", To: "C", Weight: 1},
		},
		Source: "A",
		Target: "C",
		Mode:   mode,
	}
}

// sampleRecord is the same fixture as a saveable record.
func sampleRecord(name string) store.Record {
	return store.Record{
		Name: name,
		Snapshot: core.Snapshot{
			Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
			Edges: []core.Edge{
				{From: "A", To: "B", Weight: 2},
				{From: "A", To: "C", Weight: 5},
				{From: "B", To: "C", Weight: 1},
			},
		},
		Source: "A",
		Target: "C",
		Mode:   bellmanford.Minimize,
	}
}
