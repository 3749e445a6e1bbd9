// Package httpapi is the thin HTTP adapter over the command engine: parse
// the request, call the engine, marshal the result. Sessions, auth, and the
// audio pipeline live elsewhere and are deliberately absent here.
package httpapi

import (
	"encoding/json"
	"net"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/command"
	"github.com/park285/talk-chess-core/internal/obslog"
	"github.com/park285/talk-chess-core/internal/present"
	"github.com/park285/talk-chess-core/internal/render"
	"github.com/park285/talk-chess-core/pkg/chessdto"
)

type Server struct {
	engine *command.Engine
	fmtr   *present.Formatter
	srv    *fasthttp.Server
}

func New(engine *command.Engine, fmtr *present.Formatter) *Server {
	s := &Server{engine: engine, fmtr: fmtr}
	s.srv = &fasthttp.Server{
		Handler: s.Handler,
		Name:    "talk-chess-core",
	}
	return s
}

func (s *Server) ListenAndServe(addr string) error {
	return s.srv.ListenAndServe(addr)
}

// Serve accepts connections from ln; used by tests with in-memory listeners.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/chess/command" && ctx.IsPost():
		s.handleCommand(ctx)
	case path == "/chess/state" && ctx.IsGet():
		s.handleState(ctx)
	case path == "/chess/board.png" && ctx.IsGet():
		s.handleBoardImage(ctx)
	case path == "/health" && ctx.IsGet():
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func (s *Server) handleCommand(ctx *fasthttp.RequestCtx) {
	var req chessdto.CommandRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeJSON(ctx, fasthttp.StatusBadRequest, chessdto.CommandResult{
			OK:    false,
			Error: "request body must be JSON with a \"text\" field",
			Code:  chessdto.CodeParseError,
		})
		return
	}

	res, err := s.engine.Execute(req.Text)
	if err != nil {
		info := s.fmtr.ErrorInfo(err)
		snap := s.engine.State()
		writeJSON(ctx, fasthttp.StatusOK, chessdto.CommandResult{
			OK:    false,
			Error: info.Message,
			Code:  info.Code,
			State: present.StateDTO(snap),
		})
		return
	}

	out := chessdto.CommandResult{
		OK:    true,
		Reply: s.fmtr.Reply(res),
		State: present.StateDTO(res.Snapshot),
	}
	if res.Move != nil {
		mv := present.MoveDTO(*res.Move)
		out.Move = &mv
	}
	if res.AIMove != nil {
		mv := present.MoveDTO(*res.AIMove)
		out.AIMove = &mv
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func (s *Server) handleState(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, present.StateDTO(s.engine.State()))
}

func (s *Server) handleBoardImage(ctx *fasthttp.RequestCtx) {
	snap := s.engine.State()

	var opts render.Options
	if snap.LastMove != nil {
		opts.Highlight = []board.Square{snap.LastMove.From, snap.LastMove.To}
	}

	data, err := render.RenderPNG(snap.Board, opts)
	if err != nil {
		obslog.L().Error("board_render_failed", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("image/png")
	ctx.SetBody(data)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		obslog.L().Error("response_marshal_failed", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetBody(body)
}
