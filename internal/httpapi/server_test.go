package httpapi

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/park285/talk-chess-core/internal/ai"
	"github.com/park285/talk-chess-core/internal/command"
	"github.com/park285/talk-chess-core/internal/msgcat"
	"github.com/park285/talk-chess-core/internal/present"
	"github.com/park285/talk-chess-core/internal/store"
	"github.com/park285/talk-chess-core/pkg/chessdto"
)

func newTestClient(t *testing.T) *fasthttp.Client {
	t.Helper()

	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	engine := command.NewEngine(store.New(), ai.NewSelector())
	srv := New(engine, present.NewFormatter(cat))

	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = ln.Close() })

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) { return ln.Dial() },
	}
}

func postCommand(t *testing.T, c *fasthttp.Client, text string) chessdto.CommandResult {
	t.Helper()
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://chess/chess/command")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	body, _ := json.Marshal(chessdto.CommandRequest{Text: text})
	req.SetBody(body)

	if err := c.Do(req, resp); err != nil {
		t.Fatalf("POST /chess/command: %v", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode(), resp.Body())
	}

	var out chessdto.CommandResult
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCommandEndpointMove(t *testing.T) {
	c := newTestClient(t)

	res := postCommand(t, c, "new game human vs human")
	if !res.OK {
		t.Fatalf("new game failed: %+v", res)
	}

	res = postCommand(t, c, "e2 to e4")
	if !res.OK {
		t.Fatalf("move failed: %+v", res)
	}
	if res.Move == nil || res.Move.Piece != "wP" {
		t.Fatalf("move record = %+v", res.Move)
	}
	if res.State == nil || res.State.Turn != "black" {
		t.Fatalf("state after move = %+v", res.State)
	}
	if res.State.Board["e4"] != "wP" {
		t.Fatalf("board[e4] = %q, want wP", res.State.Board["e4"])
	}
	if _, occupied := res.State.Board["e2"]; occupied {
		t.Fatal("e2 still occupied in state DTO")
	}
}

func TestCommandEndpointDomainError(t *testing.T) {
	c := newTestClient(t)
	postCommand(t, c, "new game human vs human")

	res := postCommand(t, c, "e4 to e5")
	if res.OK {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res.Code != chessdto.CodeNoPieceAtSource {
		t.Fatalf("code = %q, want %q", res.Code, chessdto.CodeNoPieceAtSource)
	}
	if res.Error == "" {
		t.Fatal("empty error message")
	}
}

func TestStateEndpoint(t *testing.T) {
	c := newTestClient(t)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)
	req.SetRequestURI("http://chess/chess/state")

	if err := c.Do(req, resp); err != nil {
		t.Fatalf("GET /chess/state: %v", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode())
	}

	var state chessdto.State
	if err := json.Unmarshal(resp.Body(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if len(state.Board) != 32 {
		t.Fatalf("board has %d entries, want 32", len(state.Board))
	}
	if state.Turn != "white" || state.Status != "in_progress" {
		t.Fatalf("state = turn %q status %q", state.Turn, state.Status)
	}
	if state.Winner != nil {
		t.Fatalf("winner = %v, want null", *state.Winner)
	}
}

func TestBoardImageEndpoint(t *testing.T) {
	c := newTestClient(t)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)
	req.SetRequestURI("http://chess/chess/board.png")

	if err := c.Do(req, resp); err != nil {
		t.Fatalf("GET /chess/board.png: %v", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if ct := string(resp.Header.ContentType()); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if len(resp.Body()) == 0 {
		t.Fatal("empty image body")
	}
}

func TestBadJSONRejected(t *testing.T) {
	c := newTestClient(t)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)
	req.SetRequestURI("http://chess/chess/command")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetBodyString("{not json")

	if err := c.Do(req, resp); err != nil {
		t.Fatalf("POST: %v", err)
	}
	if resp.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode())
	}
}
